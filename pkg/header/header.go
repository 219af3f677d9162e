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

package header

import (
	"time"
)

// Kind represents the type of a quicktest document.
type Kind string

// Kinds emitted by quicktest.
const (
	KindQuicktestReport Kind = "QuicktestReport"
	KindDetectReport    Kind = "DetectReport"
)

// APIVersion is the schema version of every document quicktest writes.
const APIVersion = "npu-quicktest.nvidia.com/v1alpha1"

// Metadata keys.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataRunID     = "run-id"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithRunID records the run identifier in the metadata.
func WithRunID(id string) Option {
	return WithMetadata(MetadataRunID, id)
}

// New creates a Header of the given kind stamped with the current UTC time
// and the tool version.
func New(kind Kind, version string, opts ...Option) *Header {
	h := &Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header identifies a quicktest document. It follows the Kind, APIVersion,
// Metadata resource convention so reports can be told apart when archived.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// RunID returns the run identifier, if any.
func (h *Header) RunID() string {
	return h.Metadata[MetadataRunID]
}
