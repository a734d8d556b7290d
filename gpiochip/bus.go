// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiochip

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"periph.io/x/gpiotools/sysfs"
)

// chipPrefix is the name every GPIO chip device node starts with.
const chipPrefix = "gpiochip"

// Bus describes where GPIO chips are looked for.
type Bus struct {
	// DevDir holds the gpiochip* device nodes.
	DevDir string
	// SysfsDir holds one directory per chip registered with the kernel.
	SysfsDir string
}

// DefaultBus is the layout of a running Linux system.
var DefaultBus = &Bus{DevDir: "/dev", SysfsDir: sysfs.GPIODevices}

func (b *Bus) devDir() string {
	if b.DevDir == "" {
		return DefaultBus.DevDir
	}
	return b.DevDir
}

func (b *Bus) sysfsDir() string {
	if b.SysfsDir == "" {
		return DefaultBus.SysfsDir
	}
	return b.SysfsDir
}

// Paths returns the path of every entry in DevDir whose name starts with
// "gpiochip", sorted by name.
//
// The sort is a plain string sort, so gpiochip10 comes before gpiochip2. No
// entry is opened or validated. An empty result is not an error.
func (b *Bus) Paths() ([]string, error) {
	dir := b.devDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ChipError{Op: "scan", Path: dir, Kind: ErrScan, Err: unwrapPath(err)}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), chipPrefix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// resolve maps a chip designation given by a user to a device path.
//
// Anything containing a slash is a path, a bare number N is gpiochipN, and
// everything else is a device name in DevDir.
func (b *Bus) resolve(name string) string {
	if strings.ContainsRune(name, '/') {
		return name
	}
	if name != "" && strings.Trim(name, "0123456789") == "" {
		return filepath.Join(b.devDir(), chipPrefix+name)
	}
	return filepath.Join(b.devDir(), name)
}

// Lookup opens and validates the chip designated by name, which may be a
// path, a device name like "gpiochip0" or a chip number like "0".
func (b *Bus) Lookup(name string) (*Chip, error) {
	return b.Open(b.resolve(name))
}

// Paths calls DefaultBus.Paths.
func Paths() ([]string, error) {
	return DefaultBus.Paths()
}

// Open calls DefaultBus.Open.
func Open(path string) (*Chip, error) {
	return DefaultBus.Open(path)
}

// Lookup calls DefaultBus.Lookup.
func Lookup(name string) (*Chip, error) {
	return DefaultBus.Lookup(name)
}

// ForEach calls DefaultBus.ForEach.
func ForEach(v Visitor) error {
	return DefaultBus.ForEach(v)
}

// unwrapPath strips the *fs.PathError layer, ChipError already names the
// path.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
