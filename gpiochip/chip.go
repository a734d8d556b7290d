// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiochip

import (
	"fmt"
	"os"
	"strings"
)

// Chip is an open, validated GPIO chip device.
//
// It is only created by Open and Lookup. The owner must call Close.
type Chip struct {
	// Path represents the path to the /dev/gpiochip* character
	// device used for ioctl() calls.
	path string
	f    *os.File
}

// Path returns the device path the chip was opened with.
func (c *Chip) Path() string {
	return c.path
}

// Close releases the device. Calling it more than once is a no-op.
func (c *Chip) Close() error {
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}

func (c *Chip) fd() (uintptr, error) {
	if c.f == nil {
		return 0, &ChipError{Op: "query", Path: c.path, Kind: ErrKernelCall, Err: os.ErrClosed}
	}
	return c.f.Fd(), nil
}

func (c *Chip) kernelErr(call string, err error) error {
	return &ChipError{Op: "query", Path: c.path, Kind: ErrKernelCall, Err: fmt.Errorf("%s ioctl: %w", call, err)}
}

// ChipInfo is what the kernel reports about a chip.
type ChipInfo struct {
	// Name is the kernel name of the chip, like "gpiochip0".
	Name string `json:"name" yaml:"name"`
	// Label is set by the driver, like "pinctrl-bcm2835". It may be empty.
	Label string `json:"label" yaml:"label"`
	// Lines is the number of GPIO lines the chip exposes.
	Lines uint32 `json:"lines" yaml:"lines"`
}

// String returns the gpiodetect rendering: "<name> [<label>] (<lines> lines)".
func (i ChipInfo) String() string {
	return fmt.Sprintf("%s [%s] (%d lines)", i.Name, i.Label, i.Lines)
}

// LineInfo is what the kernel reports about one line of a chip.
type LineInfo struct {
	Offset    uint32 `json:"offset" yaml:"offset"`
	Name      string `json:"name" yaml:"name"`
	Consumer  string `json:"consumer" yaml:"consumer"`
	Used      bool   `json:"used" yaml:"used"`
	Output    bool   `json:"output" yaml:"output"`
	ActiveLow bool   `json:"active_low" yaml:"active_low"`
	// Bias is "pull-up", "pull-down", "disabled" or empty when not set.
	Bias string `json:"bias,omitempty" yaml:"bias,omitempty"`
	// Drive is "open-drain", "open-source" or empty for push-pull.
	Drive string `json:"drive,omitempty" yaml:"drive,omitempty"`
}

// FormatLineInfo renders a line the way gpioinfo does.
func FormatLineInfo(li LineInfo) string {
	name := li.Name
	if name == "" {
		name = "unnamed"
	}
	consumer := "unused"
	if li.Used {
		consumer = li.Consumer
		if consumer == "" {
			consumer = "kernel"
		}
		if strings.Contains(consumer, " ") {
			consumer = "\"" + consumer + "\""
		}
	}
	dirn := "input"
	if li.Output {
		dirn = "output"
	}
	active := "active-high"
	if li.ActiveLow {
		active = "active-low"
	}
	var flags []string
	if li.Used {
		flags = append(flags, "used")
	}
	if li.Drive != "" {
		flags = append(flags, li.Drive)
	}
	switch li.Bias {
	case "":
	case "disabled":
		flags = append(flags, "bias-disabled")
	default:
		flags = append(flags, li.Bias)
	}
	flstr := ""
	if len(flags) > 0 {
		flstr = " [" + strings.Join(flags, " ") + "]"
	}
	return fmt.Sprintf("\tline %3d:%12s%12s%8s%13s%s", li.Offset, name, consumer, dirn, active, flstr)
}
