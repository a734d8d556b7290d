// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package sysfs

import "fmt"

// ReadDevAttr always fails, /sys/bus/gpio only exists on Linux.
func ReadDevAttr(root, name string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrNoAttr, DevAttrPath(root, name))
}
