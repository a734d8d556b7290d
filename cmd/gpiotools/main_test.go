// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux && !nogpiodetect && !nogpioinfo && !nogpioget

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
	"periph.io/x/gpiotools/gpiochip"
)

type layout struct {
	dev, sys string
}

func newLayout(t *testing.T) layout {
	t.Helper()
	root := t.TempDir()
	l := layout{dev: filepath.Join(root, "dev"), sys: filepath.Join(root, "sys")}
	require.NoError(t, os.Mkdir(l.dev, 0o755))
	require.NoError(t, os.Mkdir(l.sys, 0o755))
	return l
}

// addChip links name to /dev/null and registers it in sysfs. The kernel
// rejects GPIO ioctls on it, so only validation succeeds.
func (l layout) addChip(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(l.dev, name)
	require.NoError(t, os.Symlink(os.DevNull, p))
	var st unix.Stat_t
	require.NoError(t, unix.Stat(os.DevNull, &st))
	dev := fmt.Sprintf("%d:%d\n", unix.Major(uint64(st.Rdev)), unix.Minor(uint64(st.Rdev)))
	require.NoError(t, os.MkdirAll(filepath.Join(l.sys, name), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(l.sys, name, "dev"), []byte(dev), 0o444))
	return p
}

func run(t *testing.T, l layout, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--dev-dir", l.dev, "--sysfs-dir", l.sys}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	cmd := newRootCommand(&bytes.Buffer{}, &bytes.Buffer{})
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list-chips", "chip-info", "get-line-values"}, names)
}

func TestListChipsEmpty(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, os.WriteFile(filepath.Join(l.dev, "random.txt"), nil, 0o644))
	out, err := run(t, l, "list-chips")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, l, "list-chips", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	out, err = run(t, l, "gpiodetect", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestListChipsRejectsArgs(t *testing.T) {
	_, err := run(t, newLayout(t), "list-chips", "gpiochip0")
	assert.Error(t, err)
}

func TestListChipsScanFailure(t *testing.T) {
	l := newLayout(t)
	l.dev = filepath.Join(l.dev, "missing")
	_, err := run(t, l, "list-chips")
	assert.True(t, errors.Is(err, gpiochip.ErrScan), "%v", err)
}

func TestListChipsKernelFailure(t *testing.T) {
	l := newLayout(t)
	p := l.addChip(t, "gpiochip0")
	_, err := run(t, l, "list-chips")
	assert.True(t, errors.Is(err, gpiochip.ErrKernelCall), "%v", err)
	assert.Contains(t, err.Error(), "unable to query "+p)
}

func TestChipInfoNotAChip(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, os.Symlink(os.DevNull, filepath.Join(l.dev, "gpiochip3")))
	_, err := run(t, l, "chip-info", "3")
	assert.True(t, errors.Is(err, gpiochip.ErrNotChip), "%v", err)
	assert.Equal(t, "unable to open "+filepath.Join(l.dev, "gpiochip3")+": inappropriate ioctl for device", err.Error())
}

func TestChipInfoMissing(t *testing.T) {
	l := newLayout(t)
	_, err := run(t, l, "chip-info", "gpiochip0")
	assert.True(t, errors.Is(err, gpiochip.ErrNotFound), "%v", err)
}

func TestChipInfoNoChips(t *testing.T) {
	out, err := run(t, newLayout(t), "chip-info")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetLineValuesArgs(t *testing.T) {
	l := newLayout(t)
	l.addChip(t, "gpiochip0")
	_, err := run(t, l, "get-line-values", "gpiochip0")
	assert.Error(t, err, "an offset is required")

	_, err = run(t, l, "get-line-values", "-l", "gpiochip0", "four")
	require.Error(t, err)
	assert.Equal(t, `invalid line offset "four"`, err.Error())

	_, err = run(t, l, "get-line-values", "gpiochip0", "4", "17")
	assert.True(t, errors.Is(err, gpiochip.ErrKernelCall), "%v", err)
}

func TestParseOffsets(t *testing.T) {
	offsets, err := parseOffsets([]string{"0", "17", "4294967295"})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 17, 4294967295}, offsets)
	_, err = parseOffsets([]string{"-1"})
	assert.Error(t, err)
	_, err = parseOffsets([]string{"4294967296"})
	assert.Error(t, err)
}

func TestInvalidOutput(t *testing.T) {
	_, err := run(t, newLayout(t), "list-chips", "-o", "xml")
	assert.Error(t, err)
}
