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

// Package quicktest runs the NPU quicktest pipeline and builds its reports.
//
// The pipeline has three strictly ordered steps:
//
//  1. identify the NPU variant from the OS device enumeration
//  2. write the variant's configuration profile into the environment
//  3. run one forward pass of the quicktest model on the Vitis AI provider
//
// Step 2 never starts before step 1 has produced a variant, and the inference
// session is never created before the whole profile has been applied.
//
// Unrecognized hardware stops the pipeline after step 1 with an
// UNSUPPORTED_DEVICE error, which maps to exit code 0.
//
// The detect command uses Detector, which identifies the device and checks the
// installation files concurrently without touching the environment.
package quicktest
