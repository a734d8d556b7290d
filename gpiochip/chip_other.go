// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package gpiochip

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// Open always fails, GPIO character devices only exist on Linux.
func (b *Bus) Open(path string) (*Chip, error) {
	return nil, &ChipError{Op: "open", Path: path, Kind: ErrNotChip, Err: errors.ErrUnsupported}
}

// Info is not supported on this OS.
func (c *Chip) Info() (ChipInfo, error) {
	return ChipInfo{}, c.kernelErr("chip info", errors.ErrUnsupported)
}

// LineInfo is not supported on this OS.
func (c *Chip) LineInfo(offset uint32) (LineInfo, error) {
	return LineInfo{}, c.kernelErr("line info", errors.ErrUnsupported)
}

// Lines is not supported on this OS.
func (c *Chip) Lines() ([]LineInfo, error) {
	return nil, c.kernelErr("chip info", errors.ErrUnsupported)
}

// ReadValues is not supported on this OS.
func (c *Chip) ReadValues(activeLow bool, offsets ...uint32) ([]gpio.Level, error) {
	return nil, c.kernelErr("line request", errors.ErrUnsupported)
}
