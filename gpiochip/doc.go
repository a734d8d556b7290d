// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// Package gpiochip finds the GPIO chips the Linux kernel exposes as
// /dev/gpiochip* character devices and queries them using the ioctl
// interface.
//
// https://docs.kernel.org/userspace-api/gpio/chardev.html
//
// A device node is only handed out as a *Chip once it has been proven to be
// a GPIO chip: it must be a character device, and its major:minor number must
// match the dev attribute sysfs publishes for the chip of the same name under
// /sys/bus/gpio/devices. Use Open or Lookup for a single chip, or ForEach to
// visit every chip one at a time, in name order.
package gpiochip
