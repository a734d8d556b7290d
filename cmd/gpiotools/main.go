// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// gpiotools lists the GPIO chips of a Linux host and prints information about
// their lines.
//
// Each subcommand can be left out of the binary with a build tag:
// nogpiodetect, nogpioinfo or nogpioget.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"periph.io/x/gpiotools/gpiochip"
	"periph.io/x/gpiotools/sysfs"
)

// commands holds the constructors of the subcommands compiled in. Each one
// appends itself from init().
var commands []func(o *options) *cobra.Command

// options are the flags shared by every subcommand.
type options struct {
	devDir   string
	sysfsDir string
	output   string
	verbose  bool
	log      *slog.Logger
}

func (o *options) bus() *gpiochip.Bus {
	return &gpiochip.Bus{DevDir: o.devDir, SysfsDir: o.sysfsDir}
}

func (o *options) text() bool {
	return o.output == "text"
}

// encode writes v in the structured output format selected.
func (o *options) encode(w io.Writer, v any) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", o.output)
}

// lookupAndVisit opens a chip named on the command line, bypassing the
// directory scan, and closes it once visit returns.
func lookupAndVisit(o *options, b *gpiochip.Bus, name string, visit func(*gpiochip.Chip) error) error {
	o.log.Debug("lookup", "chip", name)
	c, err := b.Lookup(name)
	if err != nil {
		return err
	}
	defer c.Close()
	return visit(c)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "gpiotools",
		Short:         "Inspect the GPIO chips of a Linux host",
		Long:          "gpiotools lists GPIO chips, prints information about their lines and reads line values using the GPIO character device interface.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch o.output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("invalid --output %q, want text, json or yaml", o.output)
			}
			level := slog.LevelWarn
			if o.verbose {
				level = slog.LevelDebug
			}
			o.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			o.log.Debug("gpio bus", "dev", o.devDir, "sysfs", o.sysfsDir)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&o.devDir, "dev-dir", gpiochip.DefaultBus.DevDir, "directory holding the gpiochip device nodes")
	f.StringVar(&o.sysfsDir, "sysfs-dir", sysfs.GPIODevices, "sysfs directory of registered GPIO chips")
	f.StringVarP(&o.output, "output", "o", "text", "output format: text, json or yaml")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information to stderr")

	for _, newCmd := range commands {
		root.AddCommand(newCmd(o))
	}
	return root
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gpiotools: %v\n", err)
		os.Exit(1)
	}
}
