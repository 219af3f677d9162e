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
	"log/slog"
	"os"
	"runtime"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/NVIDIA/npu-quicktest/pkg/version"
)

// EnvRuntimeLibrary overrides the ONNX Runtime shared library location.
const EnvRuntimeLibrary = "ONNXRUNTIME_SHARED_LIBRARY_PATH"

// MinRuntimeVersion is the oldest ONNX Runtime shipped with a Vitis AI provider
// that reads the quicktest provider options.
var MinRuntimeVersion = version.MustParse("1.17.0")

// libraryCandidates lists well-known library locations per OS.
// On Windows the loader search path is used when nothing else is found.
func libraryCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"onnxruntime.dll"}
	case "darwin":
		return []string{
			"/opt/homebrew/opt/onnxruntime/lib/libonnxruntime.dylib",
			"/usr/local/opt/onnxruntime/lib/libonnxruntime.dylib",
			"/usr/local/lib/libonnxruntime.dylib",
		}
	default:
		return []string{
			"/usr/lib/libonnxruntime.so",
			"/usr/local/lib/libonnxruntime.so",
			"/usr/lib/x86_64-linux-gnu/libonnxruntime.so",
		}
	}
}

// DiscoverLibrary returns the first candidate that exists, or "" if none does.
func DiscoverLibrary(candidates []string) string {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ORTRuntime implements Runtime with ONNX Runtime.
type ORTRuntime struct {
	// LibraryPath is the shared library to load. Empty means EnvRuntimeLibrary,
	// then discovery, then the onnxruntime_go default.
	LibraryPath string

	mu          sync.Mutex
	initialized bool
	version     string
}

// NewORTRuntime creates a runtime for the given shared library path.
func NewORTRuntime(libraryPath string) *ORTRuntime {
	return &ORTRuntime{LibraryPath: libraryPath}
}

func (r *ORTRuntime) libraryPath() string {
	if r.LibraryPath != "" {
		return r.LibraryPath
	}
	if p := os.Getenv(EnvRuntimeLibrary); p != "" {
		return p
	}
	return DiscoverLibrary(libraryCandidates())
}

func (r *ORTRuntime) init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized || ort.IsInitialized() {
		r.initialized = true
		return nil
	}

	if p := r.libraryPath(); p != "" {
		slog.Debug("using onnxruntime shared library", slog.String("path", p))
		ort.SetSharedLibraryPath(p)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}
	r.initialized = true
	r.version = ort.GetVersion()
	checkRuntimeVersion(r.version)
	return nil
}

// Version returns the loaded ONNX Runtime version, empty before the first session.
func (r *ORTRuntime) Version() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// checkRuntimeVersion warns when the library predates MinRuntimeVersion.
// The provider may still load, so this never fails the run.
func checkRuntimeVersion(raw string) bool {
	v, err := version.Parse(raw)
	if err != nil {
		slog.Warn("unrecognized onnxruntime version", slog.String("version", raw))
		return false
	}
	if !v.AtLeast(MinRuntimeVersion) {
		slog.Warn("onnxruntime is older than the supported minimum",
			slog.String("version", v.String()),
			slog.String("minimum", MinRuntimeVersion.String()))
		return false
	}
	slog.Debug("onnxruntime loaded", slog.String("version", raw))
	return true
}

// Close tears down the ONNX Runtime environment.
func (r *ORTRuntime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return nil
	}
	r.initialized = false
	return ort.DestroyEnvironment()
}

// NewSession implements Runtime.
func (r *ORTRuntime) NewSession(ctx context.Context, cfg Config) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := r.init(); err != nil {
		return nil, err
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer options.Destroy()

	if cfg.Provider != "" {
		if err := options.AppendExecutionProvider(providerAPIName(cfg.Provider), cfg.ProviderOptions()); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", cfg.Provider, err)
		}
	}

	// The smoke test fetches every output, so read their names from the model.
	_, outputs, err := ort.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %q: %w", cfg.ModelPath, err)
	}
	outputNames := make([]string, 0, len(outputs))
	for _, o := range outputs {
		outputNames = append(outputNames, o.Name)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, outputNames, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	slog.Debug("onnx session created",
		slog.String("model", cfg.ModelPath),
		slog.String("provider", cfg.Provider),
		slog.Any("outputs", outputNames))

	return &ortSession{
		session:     session,
		inputNames:  []string{cfg.InputName},
		outputCount: len(outputNames),
	}, nil
}

type ortSession struct {
	session     *ort.DynamicAdvancedSession
	inputNames  []string
	outputCount int
}

// Run implements Session. Outputs are allocated by the runtime and released
// before returning.
func (s *ortSession) Run(ctx context.Context, inputs map[string]Tensor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	values := make([]ort.Value, 0, len(s.inputNames))
	defer func() {
		for _, v := range values {
			v.Destroy()
		}
	}()

	for _, name := range s.inputNames {
		in, ok := inputs[name]
		if !ok {
			return fmt.Errorf("missing input %q", name)
		}
		if err := checkTensor(name, in); err != nil {
			return err
		}
		t, err := ort.NewTensor(ort.NewShape(in.Shape...), in.Data)
		if err != nil {
			return fmt.Errorf("failed to create input tensor %q: %w", name, err)
		}
		values = append(values, t)
	}

	outputs := make([]ort.Value, s.outputCount)
	err := s.session.Run(values, outputs)
	for _, o := range outputs {
		if o != nil {
			o.Destroy()
		}
	}
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}
	return nil
}

// Destroy implements Session.
func (s *ortSession) Destroy() error {
	if s.session == nil {
		return nil
	}
	err := s.session.Destroy()
	s.session = nil
	return err
}
