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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/profile"
)

func envCmd() *cli.Command {
	return &cli.Command{
		Name:                  "env",
		EnableShellCompletion: true,
		Usage:                 "Print the environment settings for the NPU",
		Description: `Prints the NAME=value lines the quicktest would set for the detected
NPU, or for --variant, without changing the environment or running inference.

# Examples

  eval "$(quicktest env --export --install-dir /opt/ryzen-ai)"
  quicktest env --variant STX`,
		Flags: []cli.Flag{
			variantFlag(),
			&cli.BoolFlag{
				Name:  "export",
				Usage: "Prefix each line with export for POSIX shells",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var v device.Variant
			if s := cmd.String("variant"); s != "" {
				if v, err = device.ParseVariant(s); err != nil {
					return qterrors.Wrap(qterrors.ErrCodeInvalidRequest, "invalid --variant", err)
				}
			} else {
				det, err := newIdentifier().Identify(ctx)
				if err != nil {
					return err
				}
				v = det.Variant
			}

			out := stdout(cmd)
			p, err := profile.ForVariant(v, cfg.InstallDir())
			if err != nil {
				if qterrors.IsCode(err, qterrors.ErrCodeUnsupportedDevice) {
					fmt.Fprintln(out, "Unrecognized APU type. Exiting.")
				}
				return err
			}

			if cmd.Bool("export") {
				for _, kv := range p.Vars() {
					fmt.Fprintf(out, "export %s=%s\n", kv.Name, shellQuote(kv.Value))
				}
				return nil
			}
			for _, kv := range p.Environ() {
				fmt.Fprintln(out, kv)
			}
			return nil
		},
	}
}

// shellQuote wraps s in single quotes for POSIX shells. An embedded quote
// closes the string, emits an escaped quote and reopens it.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
