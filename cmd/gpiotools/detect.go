// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !nogpiodetect

package main

import (
	"github.com/spf13/cobra"
	"periph.io/x/gpiotools/gpiochip"
)

func init() {
	commands = append(commands, newListChipsCommand)
}

func newListChipsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list-chips",
		Aliases: []string{"gpiodetect"},
		Short:   "List all GPIO chips in the system",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := o.bus()
			if o.text() {
				return b.ForEach(gpiochip.Detect(cmd.OutOrStdout()))
			}
			chips := []gpiochip.ChipInfo{}
			err := b.ForEach(gpiochip.VisitorFunc(func(c *gpiochip.Chip) error {
				info, err := c.Info()
				if err != nil {
					return err
				}
				o.log.Debug("chip", "path", c.Path(), "name", info.Name)
				chips = append(chips, info)
				return nil
			}))
			if err != nil {
				return err
			}
			return o.encode(cmd.OutOrStdout(), chips)
		},
	}
}
