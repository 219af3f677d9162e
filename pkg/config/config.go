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

// Package config holds the quicktest settings and the Ryzen AI installation layout.
//
// Settings come from three places, highest precedence first: command-line flags
// (and their environment variables), an optional YAML file, built-in defaults.
// Relative model and provider config paths are resolved against the
// installation directory.
//
// Example YAML file:
//
//	installDir: C:\Program Files\RyzenAI\1.2.0
//	model: quicktest/test_model.onnx
//	providerConfig: voe-4.0-win_amd64/vaip_config.json
//	cacheKey: modelcachekey_quicktest
//	runtimeLibrary: C:\Program Files\RyzenAI\1.2.0\onnxruntime\bin\onnxruntime.dll
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/inference"
	"github.com/NVIDIA/npu-quicktest/pkg/profile"
)

// EnvInstallDir names the installation root of the Ryzen AI software.
const EnvInstallDir = "RYZEN_AI_INSTALLATION_PATH"

// Defaults for the quicktest model run.
const (
	DefaultModel    = "quicktest/test_model.onnx"
	DefaultCacheKey = "modelcachekey_quicktest"
)

// DefaultProviderConfig is the Vitis AI provider configuration, relative to the installation.
var DefaultProviderConfig = filepath.Join(profile.VOEDir, "vaip_config.json")

// File is the on-disk YAML configuration. Empty fields keep their defaults.
type File struct {
	InstallDir     string `yaml:"installDir,omitempty"`
	Model          string `yaml:"model,omitempty"`
	ProviderConfig string `yaml:"providerConfig,omitempty"`
	CacheKey       string `yaml:"cacheKey,omitempty"`
	Provider       string `yaml:"provider,omitempty"`
	RuntimeLibrary string `yaml:"runtimeLibrary,omitempty"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, qterrors.WrapWithContext(qterrors.ErrCodeInvalidRequest,
			"invalid config file", err, map[string]any{"path": path})
	}
	return &f, nil
}

// Config holds the resolved quicktest settings.
type Config struct {
	installDir     string
	model          string
	providerConfig string
	cacheKey       string
	provider       string
	runtimeLibrary string
}

// Option is a functional option for configuring Config instances.
type Option func(*Config)

// WithFile applies the non-empty fields of a config file.
func WithFile(f *File) Option {
	return func(c *Config) {
		if f == nil {
			return
		}
		setIfNotEmpty(&c.installDir, f.InstallDir)
		setIfNotEmpty(&c.model, f.Model)
		setIfNotEmpty(&c.providerConfig, f.ProviderConfig)
		setIfNotEmpty(&c.cacheKey, f.CacheKey)
		setIfNotEmpty(&c.provider, f.Provider)
		setIfNotEmpty(&c.runtimeLibrary, f.RuntimeLibrary)
	}
}

// WithInstallDir sets the installation directory. Empty values are ignored.
func WithInstallDir(dir string) Option {
	return func(c *Config) {
		setIfNotEmpty(&c.installDir, dir)
	}
}

// WithModel sets the model path. Empty values are ignored.
func WithModel(path string) Option {
	return func(c *Config) {
		setIfNotEmpty(&c.model, path)
	}
}

// WithProviderConfig sets the execution provider config file. Empty values are ignored.
func WithProviderConfig(path string) Option {
	return func(c *Config) {
		setIfNotEmpty(&c.providerConfig, path)
	}
}

// WithCacheKey sets the compiled model cache key. Empty values are ignored.
func WithCacheKey(key string) Option {
	return func(c *Config) {
		setIfNotEmpty(&c.cacheKey, key)
	}
}

// WithRuntimeLibrary sets the ONNX Runtime shared library path. Empty values are ignored.
func WithRuntimeLibrary(path string) Option {
	return func(c *Config) {
		setIfNotEmpty(&c.runtimeLibrary, path)
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// NewConfig creates a Config with defaults, then applies options in order.
func NewConfig(options ...Option) *Config {
	c := &Config{
		model:          DefaultModel,
		providerConfig: DefaultProviderConfig,
		cacheKey:       DefaultCacheKey,
		provider:       inference.DefaultProvider,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Validate checks that the installation directory is known.
func (c *Config) Validate() error {
	if c.installDir == "" {
		return qterrors.NewWithContext(qterrors.ErrCodeMissingConfig,
			"installation directory is not set", map[string]any{"env": EnvInstallDir})
	}
	return nil
}

// InstallDir returns the installation directory.
func (c *Config) InstallDir() string {
	return c.installDir
}

// ModelPath returns the model path resolved against the installation directory.
func (c *Config) ModelPath() string {
	return c.resolve(c.model)
}

// ProviderConfigPath returns the provider config path resolved against the installation directory.
func (c *Config) ProviderConfigPath() string {
	return c.resolve(c.providerConfig)
}

// CacheKey returns the compiled model cache key.
func (c *Config) CacheKey() string {
	return c.cacheKey
}

// Provider returns the execution provider name.
func (c *Config) Provider() string {
	return c.provider
}

// RuntimeLibrary returns the ONNX Runtime shared library path, empty for discovery.
func (c *Config) RuntimeLibrary() string {
	return c.runtimeLibrary
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.installDir == "" {
		return p
	}
	return filepath.Join(c.installDir, p)
}
