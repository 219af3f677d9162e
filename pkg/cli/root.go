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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/npu-quicktest/pkg/config"
	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/inference"
	"github.com/NVIDIA/npu-quicktest/pkg/logging"
)

const (
	name           = "quicktest"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Hooks replaced in tests. A nil runtime lets the pipeline load ONNX Runtime.
var (
	newIdentifier = func() *device.Identifier { return device.NewIdentifier(nil) }
	newRuntime    = func(*config.Config) inference.Runtime { return nil }
)

// Execute runs the quicktest CLI and exits the process with the code mapped
// from the returned error. It is the only place the process terminates.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.Writer = stdout
	root.ErrWriter = stderr

	err := root.Run(ctx, args)
	code := qterrors.ExitCode(err)
	if err != nil && code != qterrors.ExitOK {
		fmt.Fprintln(stderr, err)
	}
	return code
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Usage:                 "Ryzen AI NPU quick test",
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: `Detects the Ryzen AI NPU variant, configures the Vitis AI execution
provider environment for it and runs one inference of the quicktest model.

Without a subcommand the full test is run.`,
		Flags: []cli.Flag{
			installDirFlag(),
			configFlag(),
			modelFlag(),
			providerConfigFlag(),
			cacheKeyFlag(),
			ortLibraryFlag(),
			logLevelFlag(),
			metricsFileFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Action: runAction,
		Commands: []*cli.Command{
			runCmd(),
			detectCmd(),
			envCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

// loadConfig resolves settings: flags and their environment variables first,
// then the config file, then built-in defaults.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var opts []config.Option

	if path := cmd.String("config"); path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithFile(f))
	}

	opts = append(opts,
		config.WithInstallDir(cmd.String("install-dir")),
		config.WithModel(cmd.String("model")),
		config.WithProviderConfig(cmd.String("provider-config")),
		config.WithCacheKey(cmd.String("cache-key")),
		config.WithRuntimeLibrary(cmd.String("ort-library")),
	)

	return config.NewConfig(opts...), nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
