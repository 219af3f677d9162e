// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package device

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultSysfsRoot is where Linux exposes one directory per PCI function.
const DefaultSysfsRoot = "/sys/bus/pci/devices"

// sysfs attribute files are a single short line.
const maxSysfsValueSize = 64

// SysfsEnumerator renders Linux sysfs PCI attributes as Windows-style hardware
// ids (PCI\VEN_xxxx&DEV_xxxx&REV_xx), one per line, so the same table applies.
type SysfsEnumerator struct {
	Root string
}

// NewSysfsEnumerator creates an enumerator reading the given sysfs directory.
func NewSysfsEnumerator(root string) *SysfsEnumerator {
	return &SysfsEnumerator{Root: root}
}

// Name implements Enumerator.
func (e *SysfsEnumerator) Name() string {
	return "sysfs"
}

// Enumerate implements Enumerator. A missing root yields empty output.
func (e *SysfsEnumerator) Enumerate(ctx context.Context) ([]byte, error) {
	entries, err := os.ReadDir(e.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("sysfs PCI root not present", slog.String("root", e.Root))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", e.Root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := filepath.Join(e.Root, name)
		id, err := readHardwareID(dir)
		if err != nil {
			slog.Debug("skipping PCI device", slog.String("path", dir), slog.String("error", err.Error()))
			continue
		}
		b.WriteString(id)
		b.WriteByte('\n')
	}

	return []byte(b.String()), nil
}

func readHardwareID(dir string) (string, error) {
	vendor, err := readHexAttr(filepath.Join(dir, "vendor"))
	if err != nil {
		return "", err
	}
	dev, err := readHexAttr(filepath.Join(dir, "device"))
	if err != nil {
		return "", err
	}
	rev, err := readHexAttr(filepath.Join(dir, "revision"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`PCI\VEN_%04X&DEV_%04X&REV_%02X`, vendor, dev, rev), nil
}

// readHexAttr reads a sysfs attribute such as "0x1022\n".
func readHexAttr(path string) (uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if len(b) > maxSysfsValueSize {
		return 0, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, maxSysfsValueSize)
	}
	if !utf8.Valid(b) {
		return 0, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	s := strings.TrimSpace(string(b))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value in %q: %w", path, err)
	}
	return v, nil
}
