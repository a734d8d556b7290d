// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package sysfs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// ReadDevAttr returns the raw content of the dev attribute of the named
// device. The kernel formats it as "<major>:<minor>\n".
//
// ErrNoAttr is only returned when the attribute is not readable. A readable
// attribute is returned as-is, even when empty.
func ReadDevAttr(root, name string) (string, error) {
	p := DevAttrPath(root, name)
	if err := unix.Access(p, unix.R_OK); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoAttr, p)
	}
	f, err := os.Open(p)
	if err != nil {
		// Removed or chmod'ed since Access.
		return "", err
	}
	defer f.Close()
	var b [16]byte
	n, err := f.Read(b[:len(b)-1])
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return string(b[:n]), nil
}
