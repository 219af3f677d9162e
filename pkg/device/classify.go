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

import "strings"

// hardwareID pairs a PCI hardware id substring with the variant it identifies.
type hardwareID struct {
	ID      string
	Variant Variant
}

// hardwareIDs is checked in order; the last match wins.
var hardwareIDs = []hardwareID{
	{ID: `PCI\VEN_1022&DEV_1502&REV_00`, Variant: VariantPHX},
	{ID: `PCI\VEN_1022&DEV_17F0&REV_00`, Variant: VariantSTX},
	{ID: `PCI\VEN_1022&DEV_17F0&REV_10`, Variant: VariantSTX},
	{ID: `PCI\VEN_1022&DEV_17F0&REV_11`, Variant: VariantSTX},
	{ID: `PCI\VEN_1022&DEV_17F0&REV_20`, Variant: VariantKRK},
}

// Classify returns the variant for the given enumeration text.
func Classify(text string) Variant {
	v, _ := classify(text)
	return v
}

// classify also returns every matched id, in table order.
func classify(text string) (Variant, []string) {
	variant := VariantUnknown
	var matched []string
	for _, hw := range hardwareIDs {
		if strings.Contains(text, hw.ID) {
			variant = hw.Variant
			matched = append(matched, hw.ID)
		}
	}
	return variant, matched
}
