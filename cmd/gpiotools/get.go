// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !nogpioget

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"periph.io/x/gpiotools/gpiochip"
)

func init() {
	commands = append(commands, newGetLineValuesCommand)
}

type lineValue struct {
	Offset uint32 `json:"offset" yaml:"offset"`
	Value  int    `json:"value" yaml:"value"`
}

func parseOffsets(args []string) ([]uint32, error) {
	offsets := make([]uint32, len(args))
	for i, s := range args {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid line offset %q", s)
		}
		offsets[i] = uint32(v)
	}
	return offsets, nil
}

func newGetLineValuesCommand(o *options) *cobra.Command {
	var activeLow bool
	cmd := &cobra.Command{
		Use:     "get-line-values [-l] CHIP OFFSET...",
		Aliases: []string{"gpioget"},
		Short:   "Read line values from a GPIO chip",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offsets, err := parseOffsets(args[1:])
			if err != nil {
				return err
			}
			var values []lineValue
			err = lookupAndVisit(o, o.bus(), args[0], func(c *gpiochip.Chip) error {
				levels, err := c.ReadValues(activeLow, offsets...)
				if err != nil {
					return err
				}
				for i, l := range levels {
					v := 0
					if l {
						v = 1
					}
					values = append(values, lineValue{Offset: offsets[i], Value: v})
				}
				return nil
			})
			if err != nil {
				return err
			}
			if !o.text() {
				return o.encode(cmd.OutOrStdout(), values)
			}
			s := make([]string, len(values))
			for i, v := range values {
				s[i] = strconv.Itoa(v.Value)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(s, " "))
			return err
		},
	}
	cmd.Flags().BoolVarP(&activeLow, "active-low", "l", false, "set the line active state to low")
	return cmd
}
