// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package gpiochip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetChips(t *testing.T) {
	old := Chips
	Chips = nil
	t.Cleanup(func() { Chips = old })
}

func TestDriverInit(t *testing.T) {
	resetChips(t)
	b := fakeBus(t)
	addChip(t, b, "gpiochip0", "/dev/null")
	// Not registered with sysfs, skipped.
	addNode(t, b, "gpiochip1", "/dev/zero")
	addChip(t, b, "gpiochip2", "/dev/zero")
	// gpiochip4 is an alias of gpiochip0.
	addChip(t, b, "gpiochip4", "/dev/null")
	chipInfoReplies(t,
		ChipInfo{Name: "gpiochip0", Label: "pinctrl-bcm2835", Lines: 54},
		ChipInfo{Name: "gpiochip2", Label: "raspberrypi-exp-gpio", Lines: 8},
		ChipInfo{Name: "gpiochip0", Label: "pinctrl-bcm2835", Lines: 54},
	)
	d := &driverGPIOChip{bus: b}
	ok, err := d.Init()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []ChipInfo{
		{Name: "gpiochip0", Label: "pinctrl-bcm2835", Lines: 54},
		{Name: "gpiochip2", Label: "raspberrypi-exp-gpio", Lines: 8},
	}, Chips)
}

func TestDriverInitNoChips(t *testing.T) {
	resetChips(t)
	d := &driverGPIOChip{bus: fakeBus(t)}
	ok, err := d.Init()
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Empty(t, Chips)
}

func TestDriverString(t *testing.T) {
	assert.Equal(t, "gpiochip", drvGPIOChip.String())
	assert.Nil(t, drvGPIOChip.Prerequisites())
	assert.Nil(t, drvGPIOChip.After())
}
