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

// Package profile selects and applies the NPU configuration profile.
//
// The Vitis AI execution provider reads its overlay firmware, runner count and
// target from the process environment when a session is created, so a Profile
// is an immutable record that is rendered into four environment variables:
//
//	XLNX_VART_FIRMWARE   overlay xclbin under the installation directory
//	NUM_OF_DPU_RUNNERS   1
//	XLNX_TARGET_NAME     AMD_AIE2_Nx4_Overlay
//	XLNX_ENABLE_CACHE    0
//
// PHX/HPT uses the phoenix 1x4 overlay; STX and KRK share the strix Nx4 overlay.
package profile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
)

// Environment variables consumed by the execution provider.
const (
	EnvFirmware    = "XLNX_VART_FIRMWARE"
	EnvNumRunners  = "NUM_OF_DPU_RUNNERS"
	EnvTargetName  = "XLNX_TARGET_NAME"
	EnvEnableCache = "XLNX_ENABLE_CACHE"
)

// VOEDir is the Vitis AI runtime directory inside the installation.
const VOEDir = "voe-4.0-win_amd64"

const (
	defaultNumRunners = 1
	defaultTargetName = "AMD_AIE2_Nx4_Overlay"
)

// Profile is the configuration for one NPU variant.
type Profile struct {
	// Name is the profile name printed when applied (PHX/HPT or STX).
	Name         string         `json:"name" yaml:"name"`
	Variant      device.Variant `json:"variant" yaml:"variant"`
	FirmwarePath string         `json:"firmwarePath" yaml:"firmwarePath"`
	NumRunners   int            `json:"numRunners" yaml:"numRunners"`
	TargetName   string         `json:"targetName" yaml:"targetName"`
	EnableCache  bool           `json:"enableCache" yaml:"enableCache"`
}

// ForVariant returns the profile for v. The unknown variant has no profile and
// yields an ErrCodeUnsupportedDevice error.
func ForVariant(v device.Variant, installDir string) (*Profile, error) {
	if installDir == "" {
		return nil, qterrors.New(qterrors.ErrCodeMissingConfig, "installation directory is not set")
	}

	xclbins := filepath.Join(installDir, VOEDir, "xclbins")

	switch v {
	case device.VariantPHX:
		return &Profile{
			Name:         "PHX/HPT",
			Variant:      v,
			FirmwarePath: filepath.Join(xclbins, "phoenix", "1x4.xclbin"),
			NumRunners:   defaultNumRunners,
			TargetName:   defaultTargetName,
		}, nil
	case device.VariantSTX, device.VariantKRK:
		return &Profile{
			Name:         "STX",
			Variant:      v,
			FirmwarePath: filepath.Join(xclbins, "strix", "AMD_AIE2P_Nx4_Overlay.xclbin"),
			NumRunners:   defaultNumRunners,
			TargetName:   defaultTargetName,
		}, nil
	case device.VariantUnknown:
		return nil, qterrors.New(qterrors.ErrCodeUnsupportedDevice, "unrecognized APU type")
	default:
		return nil, qterrors.NewWithContext(qterrors.ErrCodeUnsupportedDevice, "unrecognized APU type",
			map[string]any{"variant": int(v)})
	}
}

// Var is one environment assignment.
type Var struct {
	Name  string
	Value string
}

// Vars returns the four assignments in display order.
func (p *Profile) Vars() []Var {
	cache := "0"
	if p.EnableCache {
		cache = "1"
	}
	return []Var{
		{Name: EnvFirmware, Value: p.FirmwarePath},
		{Name: EnvNumRunners, Value: strconv.Itoa(p.NumRunners)},
		{Name: EnvTargetName, Value: p.TargetName},
		{Name: EnvEnableCache, Value: cache},
	}
}

// Environ returns the assignments as NAME=value strings.
func (p *Profile) Environ() []string {
	vars := p.Vars()
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.Name+"="+v.Value)
	}
	return out
}

// SetenvFunc writes one environment variable.
type SetenvFunc func(key, value string) error

// Apply writes the profile into the environment. A nil setenv writes the
// process environment.
func (p *Profile) Apply(setenv SetenvFunc) error {
	if setenv == nil {
		setenv = os.Setenv
	}
	for _, v := range p.Vars() {
		if err := setenv(v.Name, v.Value); err != nil {
			return qterrors.Wrap(qterrors.ErrCodeInternal, fmt.Sprintf("failed to set %s", v.Name), err)
		}
	}
	return nil
}

// Echo prints each assignment as "NAME= value".
func (p *Profile) Echo(w io.Writer) {
	for _, v := range p.Vars() {
		fmt.Fprintf(w, "%s= %s\n", v.Name, v.Value)
	}
}

// Configure selects the profile for v, announces it, applies it and echoes the
// result to w. For unrecognized hardware it prints the exit notice and returns
// the ErrCodeUnsupportedDevice error without touching the environment.
func Configure(w io.Writer, v device.Variant, installDir string, setenv SetenvFunc) (*Profile, error) {
	p, err := ForVariant(v, installDir)
	if err != nil {
		if qterrors.IsCode(err, qterrors.ErrCodeUnsupportedDevice) {
			fmt.Fprintln(w, "Unrecognized APU type. Exiting.")
		}
		return nil, err
	}

	fmt.Fprintf(w, "Setting environment for %s\n", p.Name)
	if err := p.Apply(setenv); err != nil {
		return nil, err
	}
	p.Echo(w)

	return p, nil
}
