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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/npu-quicktest/pkg/config"
	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/inference"
	"github.com/NVIDIA/npu-quicktest/pkg/logging"
	"github.com/NVIDIA/npu-quicktest/pkg/serializer"
)

// Each call returns a new flag; a cli.Flag keeps its parsed state.

func installDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "install-dir",
		Usage:   "Ryzen AI software installation directory",
		Sources: cli.EnvVars(config.EnvInstallDir),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "config",
		Aliases:   []string{"c"},
		Usage:     "YAML config file with installation and model settings",
		TakesFile: true,
	}
}

func modelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "model",
		Usage:     fmt.Sprintf("ONNX model, relative to the installation directory (default: %s)", config.DefaultModel),
		TakesFile: true,
	}
}

func providerConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "provider-config",
		Usage:     fmt.Sprintf("Vitis AI provider config, relative to the installation directory (default: %s)", config.DefaultProviderConfig),
		TakesFile: true,
	}
}

func cacheKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "cache-key",
		Usage: fmt.Sprintf("Compiled model cache key (default: %s)", config.DefaultCacheKey),
	}
}

func ortLibraryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "ort-library",
		Usage:     "Path to the ONNX Runtime shared library (default: discovered)",
		Sources:   cli.EnvVars(inference.EnvRuntimeLibrary),
		TakesFile: true,
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

func metricsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "metrics-file",
		Usage:     "Write Prometheus metrics in text format to this file on exit",
		TakesFile: true,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "output",
		Aliases:   []string{"o"},
		Usage:     "Output file path (default: stdout)",
		TakesFile: true,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
	}
}

func variantFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "variant",
		Usage: fmt.Sprintf("Skip detection and use this NPU variant (%s)", variantNames()),
	}
}

func variantNames() string {
	names := make([]string, 0, len(device.Variants))
	for _, v := range device.Variants {
		names = append(names, v.String())
	}
	return strings.Join(names, ", ")
}

// parseFormat reads a serializer format from the named flag.
func parseFormat(cmd *cli.Command, flag string) (serializer.Format, error) {
	v := cmd.String(flag)
	f := serializer.Format(strings.ToLower(strings.TrimSpace(v)))
	if f.IsUnknown() {
		return "", qterrors.NewWithContext(qterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", v),
			map[string]any{"flag": flag, "supported": serializer.SupportedFormats()})
	}
	return f, nil
}
