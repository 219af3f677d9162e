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

import "fmt"

// Variant is the NPU hardware variant.
type Variant int

const (
	// VariantUnknown means none of the known hardware ids were found.
	VariantUnknown Variant = iota
	// VariantPHX is Phoenix or Hawk Point.
	VariantPHX
	// VariantSTX is Strix Point.
	VariantSTX
	// VariantKRK is Krackan Point.
	VariantKRK
)

// Variants lists the recognized variants, VariantUnknown excluded.
var Variants = []Variant{
	VariantPHX,
	VariantSTX,
	VariantKRK,
}

// String returns the variant label. VariantUnknown has an empty label.
func (v Variant) String() string {
	switch v {
	case VariantPHX:
		return "PHX/HPT"
	case VariantSTX:
		return "STX"
	case VariantKRK:
		return "KRK"
	case VariantUnknown:
		return ""
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// IsKnown reports whether v is one of the recognized variants.
func (v Variant) IsKnown() bool {
	return v == VariantPHX || v == VariantSTX || v == VariantKRK
}

// ParseVariant parses a variant label. The match is exact; "PHX" and "HPT" are
// accepted as shorthands for PHX/HPT.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "PHX/HPT", "PHX", "HPT":
		return VariantPHX, nil
	case "STX":
		return VariantSTX, nil
	case "KRK":
		return VariantKRK, nil
	default:
		return VariantUnknown, fmt.Errorf("unknown variant %q (supported: PHX/HPT, STX, KRK)", s)
	}
}

// MarshalText renders the label; unknown renders as "unknown" so reports never carry an empty value.
func (v Variant) MarshalText() ([]byte, error) {
	if v == VariantUnknown {
		return []byte("unknown"), nil
	}
	return []byte(v.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (v *Variant) UnmarshalText(b []byte) error {
	if string(b) == "unknown" || len(b) == 0 {
		*v = VariantUnknown
		return nil
	}
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
