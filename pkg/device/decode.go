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

package device

import (
	"log/slog"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw enumeration output to text. pnputil writes the console
// code page, so Windows-1252 is tried first; on failure the bytes are used as is.
func Decode(raw []byte) string {
	text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		slog.Debug("windows-1252 decode failed, using raw output", slog.String("error", err.Error()))
		return string(raw)
	}
	return string(text)
}
