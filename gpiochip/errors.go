// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiochip

import (
	"errors"
	"fmt"
)

// Error kinds. A *ChipError carries exactly one of them, so they can be tested
// for with errors.Is.
var (
	// ErrNotFound is reported when the device node doesn't exist.
	ErrNotFound = errors.New("gpio chip not found")
	// ErrNotChip is reported when the path is not a character device or the
	// kernel has no sysfs record of it as a GPIO chip. The underlying cause is
	// ENOTTY, what the first GPIO ioctl() would have failed with.
	ErrNotChip = errors.New("not a gpio chip")
	// ErrMismatch is reported when the device number of the node disagrees
	// with the one sysfs has for the chip of the same name. The underlying
	// cause is ENODEV.
	ErrMismatch = errors.New("device number mismatch")
	// ErrKernelCall is reported when an ioctl() fails on a validated chip.
	ErrKernelCall = errors.New("gpio ioctl failed")
	// ErrScan is reported when the device directory can't be listed.
	ErrScan = errors.New("device directory scan failed")
)

// ChipError records a failed operation on a GPIO chip path.
type ChipError struct {
	Op   string // "open", "scan", "query"
	Path string // device node or directory
	Kind error  // one of the Err* kinds above, or nil for a plain I/O error
	Err  error  // underlying cause, usually a unix.Errno or *fs.PathError
}

// Error mimics the "unable to open /dev/gpiochip0: ..." diagnostics of the
// gpio command line tools.
func (e *ChipError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ChipError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}
