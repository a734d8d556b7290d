// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gpiochip

import (
	"fmt"
	"io"
)

// Visitor is applied to each chip by ForEach.
//
// The chip is closed by ForEach once VisitChip returns; it must not be
// retained.
type Visitor interface {
	VisitChip(c *Chip) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(c *Chip) error

// VisitChip calls f(c).
func (f VisitorFunc) VisitChip(c *Chip) error {
	return f(c)
}

// ForEach opens every chip returned by Paths, in that order, and passes it to
// v.
//
// Exactly one chip is open at a time: each is closed before the next one is
// opened, whether v succeeded or not. The first validation or visitor error
// ends the walk and is returned.
func (b *Bus) ForEach(v Visitor) error {
	paths, err := b.Paths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := b.visit(p, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) visit(path string, v Visitor) error {
	c, err := b.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()
	return v.VisitChip(c)
}

// Detect returns a Visitor printing one ChipInfo line per chip to w.
func Detect(w io.Writer) Visitor {
	return VisitorFunc(func(c *Chip) error {
		info, err := c.Info()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, info)
		return err
	})
}
