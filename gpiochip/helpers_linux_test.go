// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package gpiochip

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fakeBus returns a Bus rooted in a temporary directory. Device nodes are
// added as symlinks to real character devices, since mknod needs
// privileges.
func fakeBus(t *testing.T) *Bus {
	t.Helper()
	root := t.TempDir()
	b := &Bus{DevDir: filepath.Join(root, "dev"), SysfsDir: filepath.Join(root, "sys")}
	require.NoError(t, os.Mkdir(b.DevDir, 0o755))
	require.NoError(t, os.Mkdir(b.SysfsDir, 0o755))
	return b
}

func addNode(t *testing.T, b *Bus, name, target string) string {
	t.Helper()
	p := filepath.Join(b.DevDir, name)
	require.NoError(t, os.Symlink(target, p))
	return p
}

func addAttr(t *testing.T, b *Bus, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(b.SysfsDir, name), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(b.SysfsDir, name, "dev"), []byte(content), 0o444))
}

// addChip adds a node whose sysfs record matches target.
func addChip(t *testing.T, b *Bus, name, target string) string {
	t.Helper()
	p := addNode(t, b, name, target)
	addAttr(t, b, name, devNumber(t, target)+"\n")
	return p
}

func devNumber(t *testing.T, path string) string {
	t.Helper()
	var st unix.Stat_t
	require.NoError(t, unix.Stat(path, &st))
	return fmt.Sprintf("%d:%d", unix.Major(uint64(st.Rdev)), unix.Minor(uint64(st.Rdev)))
}

// openFds returns the number of file descriptors held by the process.
func openFds(t *testing.T) int {
	t.Helper()
	// Let the runtime poller allocate its descriptors before counting.
	if f, err := os.Open(os.DevNull); err == nil {
		_ = f.Close()
	}
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}

// mockIoctl stands in for the kernel for the duration of the test.
func mockIoctl(t *testing.T, f func(fd, req uintptr, arg unsafe.Pointer) error) {
	t.Helper()
	old := ioctl
	ioctl = f
	t.Cleanup(func() { ioctl = old })
}

// chipInfoReplies answers GPIO_GET_CHIPINFO_IOCTL with infos, one per call.
func chipInfoReplies(t *testing.T, infos ...ChipInfo) {
	t.Helper()
	n := 0
	mockIoctl(t, func(fd, req uintptr, arg unsafe.Pointer) error {
		if req != chipInfoIoctl {
			return unix.EINVAL
		}
		if n >= len(infos) {
			return unix.ENODEV
		}
		ci := (*gpiochip_info)(arg)
		copy(ci.name[:], infos[n].Name)
		copy(ci.label[:], infos[n].Label)
		ci.lines = infos[n].Lines
		n++
		return nil
	})
}
