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

package defaults

import "time"

// Device detection timeouts.
const (
	// EnumerationTimeout bounds a single run of the OS device enumeration command.
	// Collectors should respect parent context deadlines when shorter.
	EnumerationTimeout = 10 * time.Second

	// DetectReportTimeout bounds the whole detect report, enumeration included.
	DetectReportTimeout = 30 * time.Second
)

