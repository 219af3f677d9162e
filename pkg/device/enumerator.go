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
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/NVIDIA/npu-quicktest/pkg/defaults"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
)

// Enumerator lists the PCI devices of the host as raw text output.
type Enumerator interface {
	// Name identifies the enumeration source in logs and reports.
	Name() string
	// Enumerate returns the raw enumeration output.
	Enumerate(ctx context.Context) ([]byte, error)
}

// NewDefaultEnumerator returns the enumerator for the running OS.
func NewDefaultEnumerator() Enumerator {
	if runtime.GOOS == "windows" {
		return NewPnPUtilEnumerator()
	}
	return NewSysfsEnumerator(DefaultSysfsRoot)
}

const pnputilCommand = "pnputil"

// pnputilArgs scope the listing to the PCI bus and print hardware ids.
var pnputilArgs = []string{"/enum-devices", "/bus", "PCI", "/deviceids"}

// commandRunner runs a command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PnPUtilEnumerator lists PCI devices with the Windows pnputil utility.
type PnPUtilEnumerator struct {
	run commandRunner
}

// NewPnPUtilEnumerator creates an enumerator backed by pnputil.
func NewPnPUtilEnumerator() *PnPUtilEnumerator {
	return &PnPUtilEnumerator{run: execRunner}
}

// Name implements Enumerator.
func (e *PnPUtilEnumerator) Name() string {
	return pnputilCommand
}

// Enumerate runs pnputil and returns its stdout. A non-zero exit status is
// logged and the captured output is still returned; only a command that cannot
// run at all, or runs out of time, is an error.
func (e *PnPUtilEnumerator) Enumerate(ctx context.Context) ([]byte, error) {
	// A longer parent deadline never extends the per-command bound.
	ctx, cancel := context.WithTimeout(ctx, defaults.EnumerationTimeout)
	defer cancel()

	run := e.run
	if run == nil {
		run = execRunner
	}

	out, err := run(ctx, pnputilCommand, pnputilArgs...)
	if err == nil {
		return out, nil
	}

	errCtx := map[string]any{"command": pnputilCommand, "args": pnputilArgs}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, qterrors.WrapWithContext(qterrors.ErrCodeTimeout,
			"device enumeration did not complete", ctxErr, errCtx)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Warn("pnputil exited with non-zero status, using captured output",
			slog.Int("exitCode", exitErr.ExitCode()),
			slog.Int("bytes", len(out)))
		return out, nil
	}

	return nil, qterrors.WrapWithContext(qterrors.ErrCodeEnumeration,
		fmt.Sprintf("failed to run %s", pnputilCommand), err, errCtx)
}
