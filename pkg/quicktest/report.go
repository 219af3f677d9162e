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
	"github.com/google/uuid"

	"github.com/NVIDIA/npu-quicktest/pkg/device"
	qterrors "github.com/NVIDIA/npu-quicktest/pkg/errors"
	"github.com/NVIDIA/npu-quicktest/pkg/header"
	"github.com/NVIDIA/npu-quicktest/pkg/inference"
	"github.com/NVIDIA/npu-quicktest/pkg/profile"
)

// Status is the outcome of a run.
type Status string

const (
	StatusPassed      Status = "passed"
	StatusFailed      Status = "failed"
	StatusUnsupported Status = "unsupported"
	StatusCanceled    Status = "canceled"
)

// StatusOf maps a pipeline error to a Status.
func StatusOf(err error) Status {
	switch qterrors.ExitCode(err) {
	case qterrors.ExitOK:
		if err == nil {
			return StatusPassed
		}
		return StatusUnsupported
	case qterrors.ExitCanceled:
		return StatusCanceled
	default:
		return StatusFailed
	}
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Report describes one pipeline run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Status    Status             `json:"status" yaml:"status"`
	Error     string             `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCode qterrors.ErrorCode `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`

	Detection *device.Detection `json:"detection,omitempty" yaml:"detection,omitempty"`
	Profile   *profile.Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Model     *inference.Config `json:"model,omitempty" yaml:"model,omitempty"`
	Inference *inference.Result `json:"inference,omitempty" yaml:"inference,omitempty"`
}

// NewReport creates an empty report stamped with version and runID.
func NewReport(version, runID string) *Report {
	return &Report{
		Header: *header.New(header.KindQuicktestReport, version, header.WithRunID(runID)),
	}
}

// finish records the outcome of the run.
func (r *Report) finish(err error) {
	r.Status = StatusOf(err)
	if err != nil {
		r.Error = err.Error()
		r.ErrorCode = qterrors.CodeOf(err)
	}
}

// FileCheck is the state of one installation file.
type FileCheck struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	Size   int64  `json:"size,omitempty" yaml:"size,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DetectReport is the output of the detect command.
type DetectReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Detection *device.Detection `json:"detection" yaml:"detection"`
	Profile   *profile.Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Files     []FileCheck       `json:"files,omitempty" yaml:"files,omitempty"`
}

// Ready reports whether the device is supported and every checked file exists.
func (r *DetectReport) Ready() bool {
	if r.Detection == nil || !r.Detection.Variant.IsKnown() {
		return false
	}
	for _, f := range r.Files {
		if !f.Exists {
			return false
		}
	}
	return true
}
