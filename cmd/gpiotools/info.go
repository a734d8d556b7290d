// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !nogpioinfo

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"periph.io/x/gpiotools/gpiochip"
)

func init() {
	commands = append(commands, newChipInfoCommand)
}

// chipReport is the structured rendering of chip-info.
type chipReport struct {
	gpiochip.ChipInfo `yaml:",inline"`
	LineInfo          []gpiochip.LineInfo `json:"line_info" yaml:"line_info"`
}

func queryChip(c *gpiochip.Chip) (*chipReport, error) {
	info, err := c.Info()
	if err != nil {
		return nil, err
	}
	lines, err := c.Lines()
	if err != nil {
		return nil, err
	}
	return &chipReport{ChipInfo: info, LineInfo: lines}, nil
}

func printReport(w io.Writer, r *chipReport) error {
	if _, err := fmt.Fprintf(w, "%s - %d lines:\n", r.Name, r.Lines); err != nil {
		return err
	}
	for _, li := range r.LineInfo {
		if _, err := fmt.Fprintln(w, gpiochip.FormatLineInfo(li)); err != nil {
			return err
		}
	}
	return nil
}

func newChipInfoCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "chip-info [CHIP...]",
		Aliases: []string{"gpioinfo"},
		Short:   "Print info about GPIO lines",
		Long:    "Print info about the lines of each named chip, or of every chip when none is named. A chip is a path, a device name like gpiochip0 or a chip number.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			reports := []*chipReport{}
			visit := func(c *gpiochip.Chip) error {
				r, err := queryChip(c)
				if err != nil {
					return err
				}
				if o.text() {
					return printReport(w, r)
				}
				reports = append(reports, r)
				return nil
			}
			b := o.bus()
			if len(args) == 0 {
				if err := b.ForEach(gpiochip.VisitorFunc(visit)); err != nil {
					return err
				}
			} else {
				for _, name := range args {
					if err := lookupAndVisit(o, b, name, visit); err != nil {
						return err
					}
				}
			}
			if o.text() {
				return nil
			}
			return o.encode(w, reports)
		},
	}
}
