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

// Package inference runs the single-pass inference smoke test.
//
// The runtime is hidden behind the Runtime and Session interfaces. ORTRuntime
// implements them with ONNX Runtime through github.com/yalue/onnxruntime_go and
// registers the Vitis AI execution provider with the provider config file and
// cache key. The provider reads the NPU profile from the process environment,
// so the profile must be applied before NewSession is called.
//
// Usage:
//
//	rt := inference.NewORTRuntime("")
//	defer rt.Close()
//
//	st := &inference.SmokeTest{
//	    Runtime: rt,
//	    Config:  inference.NewConfig(modelPath, providerConfig, cacheKey),
//	    Out:     os.Stdout,
//	}
//	res, err := st.Run(ctx)
package inference

import (
	"fmt"
	"strings"
)

// Fixed properties of the quicktest model.
const (
	DefaultInputName = "input"
	DefaultProvider  = "VitisAIExecutionProvider"
)

// DefaultInputShape is NCHW for one 3x32x32 image.
var DefaultInputShape = []int64{1, 3, 32, 32}

// Provider option keys understood by the Vitis AI execution provider.
const (
	ProviderOptionConfigFile = "config_file"
	ProviderOptionCacheKey   = "cacheKey"
)

// Config describes the session and the single run.
type Config struct {
	ModelPath          string  `json:"modelPath" yaml:"modelPath"`
	Provider           string  `json:"provider" yaml:"provider"`
	ProviderConfigPath string  `json:"providerConfig" yaml:"providerConfig"`
	CacheKey           string  `json:"cacheKey" yaml:"cacheKey"`
	InputName          string  `json:"inputName" yaml:"inputName"`
	InputShape         []int64 `json:"inputShape" yaml:"inputShape"`
}

// NewConfig returns the quicktest run configuration for the given files.
func NewConfig(modelPath, providerConfigPath, cacheKey string) Config {
	shape := make([]int64, len(DefaultInputShape))
	copy(shape, DefaultInputShape)
	return Config{
		ModelPath:          modelPath,
		Provider:           DefaultProvider,
		ProviderConfigPath: providerConfigPath,
		CacheKey:           cacheKey,
		InputName:          DefaultInputName,
		InputShape:         shape,
	}
}

// ProviderOptions returns the options passed when registering the provider.
func (c Config) ProviderOptions() map[string]string {
	return map[string]string{
		ProviderOptionConfigFile: c.ProviderConfigPath,
		ProviderOptionCacheKey:   c.CacheKey,
	}
}

// Validate checks that the configuration can build a session.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model path is required")
	}
	if c.InputName == "" {
		return fmt.Errorf("input name is required")
	}
	if len(c.InputShape) == 0 {
		return fmt.Errorf("input shape is required")
	}
	for i, d := range c.InputShape {
		if d <= 0 {
			return fmt.Errorf("input shape dimension %d must be positive, got %d", i, d)
		}
	}
	return nil
}

// providerAPIName maps a provider name such as "VitisAIExecutionProvider" to the
// short name the C API registers it under ("VitisAI").
func providerAPIName(provider string) string {
	return strings.TrimSuffix(provider, "ExecutionProvider")
}
