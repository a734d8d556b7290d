// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpiotools inspects the GPIO chips of a Linux host.
//
// The work is done by the gpiochip package; the command line front end lives
// in cmd/gpiotools.
package gpiotools

import (
	"periph.io/x/conn/v3/driver/driverreg"

	// Make sure the chip driver is registered.
	_ "periph.io/x/gpiotools/gpiochip"
)

// Init calls driverreg.Init() and returns it as-is.
//
// The only difference is that by calling gpiotools.Init(), you are guaranteed
// to have the gpiochip driver loaded, so gpiochip.Chips is populated on
// return.
func Init() (*driverreg.State, error) {
	return driverreg.Init()
}
