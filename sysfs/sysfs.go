// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sysfs

import (
	"errors"
	"path/filepath"
)

// GPIODevices is the sysfs directory holding one entry per registered GPIO
// chip.
const GPIODevices = "/sys/bus/gpio/devices"

// ErrNoAttr is returned when a device has no readable dev attribute, which
// means the kernel doesn't know it as a GPIO chip.
var ErrNoAttr = errors.New("sysfs: no readable dev attribute")

// DevAttrPath returns the path of the dev attribute of the named device
// under root, something like /sys/bus/gpio/devices/gpiochip0/dev.
func DevAttrPath(root, name string) string {
	return filepath.Join(root, name, "dev")
}
