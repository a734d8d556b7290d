// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package gpiochip

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/gpiotools/sysfs"
)

// The consumer name to use for line requests. Initialized in init()
var consumer []byte

// Open opens path and makes sure it is a character device associated with a
// GPIO chip.
//
// The device must be a character device, sysfs must publish a dev attribute
// for a device of the same base name, and that attribute must start with the
// major:minor number of the node. Otherwise the error is a *ChipError of kind
// ErrNotChip (ENOTTY) or ErrMismatch (ENODEV). Nothing is left open on
// failure.
func (b *Bus) Open(path string) (*Chip, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		e := &ChipError{Op: "open", Path: path, Err: unwrapPath(err)}
		if errors.Is(err, fs.ErrNotExist) {
			e.Kind = ErrNotFound
		}
		return nil, e
	}
	if err := b.validate(f, path); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Chip{path: path, f: f}, nil
}

func (b *Bus) validate(f *os.File, path string) error {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return &ChipError{Op: "open", Path: path, Err: err}
	}
	// A GPIO ioctl() on anything but a character device fails with ENOTTY,
	// report the same.
	if st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return &ChipError{Op: "open", Path: path, Kind: ErrNotChip, Err: unix.ENOTTY}
	}
	// A character device but not a GPIO chip; the first GPIO ioctl() would
	// still fail with ENOTTY.
	attr, err := sysfs.ReadDevAttr(b.sysfsDir(), filepath.Base(path))
	if errors.Is(err, sysfs.ErrNoAttr) {
		return &ChipError{Op: "open", Path: path, Kind: ErrNotChip, Err: unix.ENOTTY}
	}
	if err != nil {
		return &ChipError{Op: "open", Path: path, Err: unwrapPath(err)}
	}
	if !devMatches(attr, uint64(st.Rdev)) {
		return &ChipError{Op: "open", Path: path, Kind: ErrMismatch, Err: unix.ENODEV}
	}
	return nil
}

// devMatches reports whether the sysfs dev attribute starts with the
// major:minor pair of rdev.
func devMatches(attr string, rdev uint64) bool {
	return strings.HasPrefix(attr, fmt.Sprintf("%d:%d", unix.Major(rdev), unix.Minor(rdev)))
}

// Info issues GPIO_GET_CHIPINFO_IOCTL.
func (c *Chip) Info() (ChipInfo, error) {
	fd, err := c.fd()
	if err != nil {
		return ChipInfo{}, err
	}
	var info gpiochip_info
	if err := ioctl_gpiochip_info(fd, &info); err != nil {
		return ChipInfo{}, c.kernelErr("chip info", err)
	}
	return ChipInfo{
		Name:  cString(info.name[:]),
		Label: cString(info.label[:]),
		Lines: info.lines,
	}, nil
}

// LineInfo issues GPIO_V2_GET_LINEINFO_IOCTL for the line at offset.
func (c *Chip) LineInfo(offset uint32) (LineInfo, error) {
	fd, err := c.fd()
	if err != nil {
		return LineInfo{}, err
	}
	var li gpio_v2_line_info
	li.offset = offset
	if err := ioctl_gpio_v2_line_info(fd, &li); err != nil {
		return LineInfo{}, c.kernelErr("line info", err)
	}
	info := LineInfo{
		Offset:    li.offset,
		Name:      cString(li.name[:]),
		Consumer:  cString(li.consumer[:]),
		Used:      li.flags&_GPIO_V2_LINE_FLAG_USED != 0,
		Output:    li.flags&_GPIO_V2_LINE_FLAG_OUTPUT != 0,
		ActiveLow: li.flags&_GPIO_V2_LINE_FLAG_ACTIVE_LOW != 0,
	}
	switch {
	case li.flags&_GPIO_V2_LINE_FLAG_BIAS_PULL_UP != 0:
		info.Bias = "pull-up"
	case li.flags&_GPIO_V2_LINE_FLAG_BIAS_PULL_DOWN != 0:
		info.Bias = "pull-down"
	case li.flags&_GPIO_V2_LINE_FLAG_BIAS_DISABLED != 0:
		info.Bias = "disabled"
	}
	switch {
	case li.flags&_GPIO_V2_LINE_FLAG_OPEN_DRAIN != 0:
		info.Drive = "open-drain"
	case li.flags&_GPIO_V2_LINE_FLAG_OPEN_SOURCE != 0:
		info.Drive = "open-source"
	}
	return info, nil
}

// Lines returns the LineInfo of every line of the chip, in offset order.
func (c *Chip) Lines() ([]LineInfo, error) {
	info, err := c.Info()
	if err != nil {
		return nil, err
	}
	lines := make([]LineInfo, 0, info.Lines)
	for offset := uint32(0); offset < info.Lines; offset++ {
		li, err := c.LineInfo(offset)
		if err != nil {
			return nil, err
		}
		lines = append(lines, li)
	}
	return lines, nil
}

// ReadValues requests the lines at offsets as inputs, reads them in a single
// GPIO_V2_LINE_GET_VALUES_IOCTL and releases them.
//
// With activeLow, a line at 0V reads as gpio.High.
func (c *Chip) ReadValues(activeLow bool, offsets ...uint32) ([]gpio.Level, error) {
	if len(offsets) == 0 {
		return nil, errors.New("gpiochip: no line offsets given")
	}
	if len(offsets) > _GPIO_V2_LINES_MAX {
		return nil, fmt.Errorf("gpiochip: at most %d lines can be read at once", _GPIO_V2_LINES_MAX)
	}
	fd, err := c.fd()
	if err != nil {
		return nil, err
	}
	var req gpio_v2_line_request
	copy(req.offsets[:], offsets)
	copy(req.consumer[:], consumer)
	req.num_lines = uint32(len(offsets))
	req.config.flags = _GPIO_V2_LINE_FLAG_INPUT
	if activeLow {
		req.config.flags |= _GPIO_V2_LINE_FLAG_ACTIVE_LOW
	}
	if err := ioctl_gpio_v2_line_request(fd, &req); err != nil {
		return nil, c.kernelErr("line request", err)
	}
	defer closeFd(int(req.fd))

	var data gpio_v2_line_values
	data.mask = uint64(1)<<uint(len(offsets)) - 1
	if err := ioctl_get_gpio_v2_line_values(uintptr(req.fd), &data); err != nil {
		return nil, c.kernelErr("get line values", err)
	}
	levels := make([]gpio.Level, len(offsets))
	for i := range levels {
		levels[i] = gpio.Level(data.bits&(uint64(1)<<uint(i)) != 0)
	}
	return levels, nil
}

func init() {
	// Init our consumer name. It's used when a line is requested, and
	// allows utility programs like gpioinfo to find out who has a line
	// open.
	fname := path.Base(os.Args[0])
	charBytes := []byte(fmt.Sprintf("%s@%d", fname, os.Getpid()))
	if len(charBytes) >= _GPIO_MAX_NAME_SIZE {
		charBytes = charBytes[:_GPIO_MAX_NAME_SIZE-1]
	}
	consumer = charBytes
}
