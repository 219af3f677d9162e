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

package quicktest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/npu-quicktest/pkg/config"
	"github.com/NVIDIA/npu-quicktest/pkg/defaults"
	"github.com/NVIDIA/npu-quicktest/pkg/device"
	"github.com/NVIDIA/npu-quicktest/pkg/header"
	"github.com/NVIDIA/npu-quicktest/pkg/profile"
)

// Installation file names in the detect report.
const (
	FileModel          = "model"
	FileProviderConfig = "providerConfig"
	FileRuntimeLibrary = "runtimeLibrary"
	FileFirmware       = "firmware"
)

// Detector identifies the NPU and checks the installation without changing
// the environment or loading the runtime.
type Detector struct {
	Version    string
	RunID      string
	Config     *config.Config
	Identifier *device.Identifier
}

// Detect gathers the device detection and the installation file checks
// concurrently. The firmware check needs the variant and runs after both.
func (d *Detector) Detect(ctx context.Context) (*DetectReport, error) {
	if d.Config == nil {
		return nil, fmt.Errorf("detector config is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.DetectReportTimeout)
	defer cancel()

	identifier := d.Identifier
	if identifier == nil {
		identifier = device.NewIdentifier(nil)
	}

	runID := d.RunID
	if runID == "" {
		runID = NewRunID()
	}

	report := &DetectReport{
		Header: *header.New(header.KindDetectReport, d.Version, header.WithRunID(runID)),
	}

	start := time.Now()
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		det, err := identifier.Identify(gctx)
		if err != nil {
			return fmt.Errorf("failed to identify device: %w", err)
		}
		mu.Lock()
		report.Detection = det
		mu.Unlock()
		return nil
	})

	if d.Config.InstallDir() != "" {
		files := map[string]string{
			FileModel:          d.Config.ModelPath(),
			FileProviderConfig: d.Config.ProviderConfigPath(),
		}
		if lib := d.Config.RuntimeLibrary(); lib != "" {
			files[FileRuntimeLibrary] = lib
		}
		for name, path := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fc := checkFile(name, path)
				mu.Lock()
				report.Files = append(report.Files, fc)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		detectDuration.Observe(time.Since(start).Seconds())
		return nil, err
	}

	if report.Detection.Variant.IsKnown() && d.Config.InstallDir() != "" {
		p, err := profile.ForVariant(report.Detection.Variant, d.Config.InstallDir())
		if err != nil {
			return nil, err
		}
		report.Profile = p
		report.Files = append(report.Files, checkFile(FileFirmware, p.FirmwarePath))
	}

	sortFiles(report.Files)
	detectDuration.Observe(time.Since(start).Seconds())

	slog.Debug("detect report complete",
		slog.String("run_id", runID),
		slog.String("variant", report.Detection.Variant.String()),
		slog.Int("files", len(report.Files)),
		slog.Bool("ready", report.Ready()))

	return report, nil
}

var fileOrder = map[string]int{
	FileModel:          0,
	FileProviderConfig: 1,
	FileRuntimeLibrary: 2,
	FileFirmware:       3,
}

func sortFiles(files []FileCheck) {
	slices.SortFunc(files, func(a, b FileCheck) int {
		return fileOrder[a.Name] - fileOrder[b.Name]
	})
}

func checkFile(name, path string) FileCheck {
	fc := FileCheck{Name: name, Path: path}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		fc.Exists = true
		fc.Size = info.Size()
	case os.IsNotExist(err):
	default:
		fc.Error = err.Error()
	}
	return fc
}
