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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/npu-quicktest/pkg/quicktest"
	"github.com/NVIDIA/npu-quicktest/pkg/serializer"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Detect the NPU, configure the environment and run the inference smoke test",
		Description: `Runs the three quicktest steps in order:
  1. Identify the NPU variant (PHX/HPT, STX, KRK) from the PCI device list
  2. Set XLNX_VART_FIRMWARE, NUM_OF_DPU_RUNNERS, XLNX_TARGET_NAME and XLNX_ENABLE_CACHE
  3. Run the quicktest model once on the Vitis AI execution provider

Prints "Test Passed" on success. Exit codes:
  0  test passed, or the NPU is not recognized
  1  configuration, enumeration, session or inference failure
  2  interrupted

# Examples

  quicktest run --install-dir "C:\Program Files\RyzenAI\1.2.0"

Keep a JSON report of the run:
  quicktest run --report quicktest.json --report-format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "report",
				Usage:     "Write a report of the run to this file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "report-format",
				Usage: "Report format (json, yaml, table)",
				Value: string(serializer.FormatJSON),
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	reportPath := cmd.String("report")
	var reportFormat serializer.Format
	if reportPath != "" {
		f, err := parseFormat(cmd, "report-format")
		if err != nil {
			return err
		}
		reportFormat = f
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := &quicktest.Pipeline{
		Version:    version,
		RunID:      quicktest.NewRunID(),
		Config:     cfg,
		Identifier: newIdentifier(),
		Runtime:    newRuntime(cfg),
		Out:        stdout(cmd),
	}

	report, runErr := p.Run(ctx)

	if reportPath != "" {
		if err := writeReport(ctx, reportFormat, reportPath, report); err != nil {
			if runErr != nil {
				slog.Error("failed to write report", slog.String("error", err.Error()))
			} else {
				runErr = err
			}
		}
	}

	return finishMetrics(cmd, runErr)
}

func writeReport(ctx context.Context, format serializer.Format, path string, v any) error {
	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return err
	}
	if err := w.Serialize(ctx, v); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return w.Close()
}

// finishMetrics writes the metrics file when requested. A write failure never
// masks the command's own error.
func finishMetrics(cmd *cli.Command, cmdErr error) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return cmdErr
	}
	if err := quicktest.WriteMetrics(path); err != nil {
		if cmdErr != nil {
			slog.Error("failed to write metrics", slog.String("error", err.Error()))
			return cmdErr
		}
		return err
	}
	slog.Debug("metrics written", slog.String("path", path))
	return cmdErr
}
