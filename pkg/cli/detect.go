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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/npu-quicktest/pkg/quicktest"
	"github.com/NVIDIA/npu-quicktest/pkg/serializer"
)

func detectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "detect",
		EnableShellCompletion: true,
		Usage:                 "Identify the NPU and check the installation without running inference",
		Description: `Prints a report with:
  - the detected NPU variant and the matching PCI hardware ids
  - the configuration profile the variant would use
  - whether the model, provider config, runtime library and firmware exist

The environment is not modified. The report can be output in JSON, YAML, or table format.

# Examples

  quicktest detect --format table
  quicktest detect --install-dir /opt/ryzen-ai --output detect.yaml`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseFormat(cmd, "format")
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			d := &quicktest.Detector{
				Version:    version,
				Config:     cfg,
				Identifier: newIdentifier(),
			}

			report, err := d.Detect(ctx)
			if err != nil {
				return finishMetrics(cmd, err)
			}

			var w *serializer.Writer
			if path := cmd.String("output"); path != "" {
				if w, err = serializer.NewFileWriter(outFormat, path); err != nil {
					return finishMetrics(cmd, err)
				}
			} else {
				w = serializer.NewWriter(outFormat, stdout(cmd))
			}

			if err := w.Serialize(ctx, report); err != nil {
				_ = w.Close()
				return finishMetrics(cmd, fmt.Errorf("failed to serialize: %w", err))
			}
			return finishMetrics(cmd, w.Close())
		},
	}
}
