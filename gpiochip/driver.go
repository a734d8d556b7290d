// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiochip

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"periph.io/x/conn/v3/driver/driverreg"
)

// Chips is what the chips found on the running device reported, in name
// order. It is filled by driver initialization, see periph.io/x/gpiotools.Init.
//
// This is a snapshot taken once. Use ForEach for a fresh, validated walk.
var Chips []ChipInfo

// driverGPIOChip implements periph.Driver.
type driverGPIOChip struct {
	bus *Bus
}

func (d *driverGPIOChip) String() string {
	return "gpiochip"
}

func (d *driverGPIOChip) Prerequisites() []string {
	return nil
}

func (d *driverGPIOChip) After() []string {
	return nil
}

// Init records the ChipInfo of every valid chip in Chips.
//
// Unlike ForEach, a chip that fails validation or the info query is logged
// and skipped so one bad node doesn't hide the others.
func (d *driverGPIOChip) Init() (bool, error) {
	if runtime.GOOS != "linux" {
		return false, errors.New("gpio character devices require linux")
	}
	paths, err := d.bus.Paths()
	if err != nil {
		return true, fmt.Errorf("gpiochip: %w", err)
	}
	var chips []ChipInfo
	// On a pi, gpiochip0 is also symlinked to gpiochip4, checking the map
	// ensures we don't duplicate the chip.
	seen := make(map[string]struct{})
	for _, p := range paths {
		info, err := d.query(p)
		if err != nil {
			log.Println("gpiochip.driverGPIOChip.Init() Error", err)
			continue
		}
		if _, found := seen[info.Name]; found {
			continue
		}
		seen[info.Name] = struct{}{}
		chips = append(chips, info)
	}
	if len(chips) == 0 {
		return false, errors.New("no GPIO chips found")
	}
	Chips = chips
	return true, nil
}

func (d *driverGPIOChip) query(path string) (ChipInfo, error) {
	c, err := d.bus.Open(path)
	if err != nil {
		return ChipInfo{}, err
	}
	defer c.Close()
	return c.Info()
}

var drvGPIOChip = driverGPIOChip{bus: DefaultBus}

func init() {
	driverreg.MustRegister(&drvGPIOChip)
}
