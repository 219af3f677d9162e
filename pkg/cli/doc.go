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

// Package cli implements the quicktest command-line interface.
//
// # Commands
//
// run - Full NPU quick test (default when no command is given):
//
//	quicktest run --install-dir "C:\Program Files\RyzenAI\1.2.0"
//
// Detects the NPU variant, writes the Vitis AI environment for it and runs one
// inference of the quicktest model. Prints "Test Passed" on success.
//
// detect - Identify the NPU and check the installation:
//
//	quicktest detect --format table
//
// Produces a DetectReport with the variant, matched PCI hardware ids, the
// selected profile and the presence of the model, provider config and firmware.
//
// env - Print the environment settings:
//
//	quicktest env --variant STX
//
// # Global Flags
//
//	--install-dir   Installation directory (env RYZEN_AI_INSTALLATION_PATH)
//	--config, -c    YAML config file
//	--ort-library   ONNX Runtime shared library (env ONNXRUNTIME_SHARED_LIBRARY_PATH)
//	--log-level     debug, info, warn, error (env LOG_LEVEL)
//	--metrics-file  Prometheus text file written on exit
//
// # Exit Codes
//
//	0  passed, or unrecognized NPU
//	1  any failure
//	2  interrupted
//
// Logs are structured JSON on stderr. User-facing messages go to stdout.
package cli
