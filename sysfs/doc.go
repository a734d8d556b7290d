// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sysfs reads the attributes the kernel publishes for GPIO chips
// under /sys/bus/gpio.
//
// https://www.kernel.org/doc/Documentation/ABI/stable/sysfs-bus-gpio
package sysfs
