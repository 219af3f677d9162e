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

package inference

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
)

// PassedMarker is printed when the smoke test succeeds.
const PassedMarker = "Test Passed"

// Result describes one smoke test run.
type Result struct {
	Passed          bool          `json:"passed" yaml:"passed"`
	SessionDuration time.Duration `json:"sessionDuration" yaml:"sessionDuration"`
	RunDuration     time.Duration `json:"runDuration,omitempty" yaml:"runDuration,omitempty"`
	Error           string        `json:"error,omitempty" yaml:"error,omitempty"`
	RuntimeVersion  string        `json:"runtimeVersion,omitempty" yaml:"runtimeVersion,omitempty"`
}

// versioner is implemented by runtimes that know their library version.
type versioner interface {
	Version() string
}

// SmokeTest builds one session and runs one forward pass on random input.
type SmokeTest struct {
	Runtime Runtime
	Config  Config

	// Out receives the user-facing messages. Defaults to stdout.
	Out io.Writer

	// Rand seeds the input values. Nil uses the package-level source.
	Rand *rand.Rand
}

// Run executes the smoke test. Session construction failures are returned as
// ErrCodeSessionCreate and run failures as ErrCodeInference; in both cases the
// failure reason is printed to Out and the partial Result is returned.
func (s *SmokeTest) Run(ctx context.Context) (*Result, error) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	if s.Runtime == nil {
		return nil, qterrors.New(qterrors.ErrCodeInternal, "inference runtime is not set")
	}

	res := &Result{}

	start := time.Now()
	session, err := s.Runtime.NewSession(ctx, s.Config)
	res.SessionDuration = time.Since(start)
	sessionCreateDuration.Observe(res.SessionDuration.Seconds())
	if v, ok := s.Runtime.(versioner); ok {
		res.RuntimeVersion = v.Version()
	}
	if err != nil {
		fmt.Fprintf(out, "Failed to create an InferenceSession: %v\n", err)
		smokeTestTotal.WithLabelValues("session_error").Inc()
		res.Error = err.Error()
		return res, qterrors.WrapWithContext(qterrors.ErrCodeSessionCreate,
			"failed to create an inference session", err,
			map[string]any{"model": s.Config.ModelPath, "provider": s.Config.Provider})
	}
	defer func() {
		if derr := session.Destroy(); derr != nil {
			slog.Warn("failed to destroy inference session", slog.String("error", derr.Error()))
		}
	}()

	slog.Debug("inference session ready", slog.Duration("duration", res.SessionDuration))

	input := RandomInput(s.Config.InputShape, s.Rand)

	start = time.Now()
	err = session.Run(ctx, map[string]Tensor{s.Config.InputName: input})
	res.RunDuration = time.Since(start)
	inferenceDuration.Observe(res.RunDuration.Seconds())
	if err != nil {
		fmt.Fprintf(out, "Failed to run the InferenceSession: %v\n", err)
		smokeTestTotal.WithLabelValues("run_error").Inc()
		res.Error = err.Error()
		return res, qterrors.WrapWithContext(qterrors.ErrCodeInference,
			"failed to run the inference session", err,
			map[string]any{"input": s.Config.InputName, "shape": s.Config.InputShape})
	}

	smokeTestTotal.WithLabelValues("passed").Inc()
	res.Passed = true
	fmt.Fprintln(out, PassedMarker)

	return res, nil
}
