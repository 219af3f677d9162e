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
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/NVIDIA/npu-quicktest/pkg/config"
	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/inference"
	"github.com/NVIDIA/npu-quicktest/pkg/profile"
)

// Pipeline runs identify, configure and smoke test in order.
type Pipeline struct {
	// Version is stamped into the report header.
	Version string

	// RunID identifies the run in logs and the report. Empty generates one.
	RunID string

	// Config holds the installation layout and model settings.
	Config *config.Config

	// Identifier classifies the host NPU. Nil uses the OS default enumerator.
	Identifier *device.Identifier

	// Runtime builds inference sessions. Nil uses ONNX Runtime.
	Runtime inference.Runtime

	// Setenv writes the profile. Nil writes the process environment.
	Setenv profile.SetenvFunc

	// Out receives the user-facing messages. Nil is stdout.
	Out io.Writer

	// Rand seeds the input tensor. Nil uses the global source.
	Rand *rand.Rand
}

// InferenceConfig builds the smoke test settings from c.
func InferenceConfig(c *config.Config) inference.Config {
	ic := inference.NewConfig(c.ModelPath(), c.ProviderConfigPath(), c.CacheKey())
	ic.Provider = c.Provider()
	return ic
}

// Run executes the pipeline. The returned report is never nil and reflects
// how far the run got; the error carries the structured code that decides
// the exit status.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	runID := p.RunID
	if runID == "" {
		runID = NewRunID()
	}
	report := NewReport(p.Version, runID)
	log := slog.With(slog.String("run_id", runID))

	start := time.Now()
	err := p.run(ctx, log, report)
	report.finish(err)

	runDuration.Observe(time.Since(start).Seconds())
	runTotal.WithLabelValues(string(report.Status)).Inc()

	attrs := []any{
		slog.String("status", string(report.Status)),
		slog.Duration("duration", time.Since(start)),
	}
	switch report.Status {
	case StatusPassed:
		log.Info("quicktest passed", attrs...)
	case StatusUnsupported:
		log.Warn("quicktest skipped on unrecognized hardware", attrs...)
	default:
		log.Error("quicktest failed", append(attrs, slog.String("error", err.Error()))...)
	}

	return report, err
}

func (p *Pipeline) run(ctx context.Context, log *slog.Logger, report *Report) error {
	if p.Config == nil {
		return qterrors.New(qterrors.ErrCodeInternal, "pipeline config is not set")
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	identifier := p.Identifier
	if identifier == nil {
		identifier = device.NewIdentifier(nil)
	}

	det, err := identifier.Identify(ctx)
	if err != nil {
		return err
	}
	report.Detection = det
	log.Debug("device identified",
		slog.String("variant", det.Variant.String()),
		slog.String("source", det.Source))

	// The installation is required from here on, for any variant.
	if err := p.Config.Validate(); err != nil {
		return err
	}

	prof, err := profile.Configure(out, det.Variant, p.Config.InstallDir(), p.Setenv)
	if err != nil {
		return err
	}
	report.Profile = prof
	log.Debug("environment configured", slog.String("profile", prof.Name))

	rt := p.Runtime
	if rt == nil {
		ort := inference.NewORTRuntime(p.Config.RuntimeLibrary())
		defer func() {
			if cerr := ort.Close(); cerr != nil {
				log.Warn("failed to release onnxruntime", slog.String("error", cerr.Error()))
			}
		}()
		rt = ort
	}

	ic := InferenceConfig(p.Config)
	report.Model = &ic

	st := &inference.SmokeTest{
		Runtime: rt,
		Config:  ic,
		Out:     out,
		Rand:    p.Rand,
	}
	res, err := st.Run(ctx)
	report.Inference = res
	return err
}
