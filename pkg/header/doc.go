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

/*
Package header provides the common header carried by every document quicktest
writes: the run report and the detect report.

A header has three parts:

  - Kind: the document type (QuicktestReport or DetectReport)
  - APIVersion: the schema version, npu-quicktest.nvidia.com/v1alpha1
  - Metadata: timestamp, tool version and the run identifier

Usage:

	h := header.New(header.KindQuicktestReport, version, header.WithRunID(id))

Serialized as YAML:

	kind: QuicktestReport
	apiVersion: npu-quicktest.nvidia.com/v1alpha1
	metadata:
	  run-id: 6f1c2d0e-7b7a-4d8e-9a39-2d8b7f0b0c11
	  timestamp: "2025-01-15T10:30:00Z"
	  version: v0.1.0

Types embed Header inline so the fields appear at the top level of the document.
*/
package header
