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
	"context"
	"log/slog"
	"time"
)

// Detection is the result of identifying the host NPU.
type Detection struct {
	// Variant is the classified hardware variant.
	Variant Variant `json:"variant" yaml:"variant"`

	// MatchedIDs lists every known hardware id found, in table order.
	// With more than one entry, the last one decided Variant.
	MatchedIDs []string `json:"matchedIds,omitempty" yaml:"matchedIds,omitempty"`

	// Source names the enumerator that produced the text.
	Source string `json:"source" yaml:"source"`
}

// Identifier classifies the host NPU from the output of an Enumerator.
type Identifier struct {
	Enumerator Enumerator
}

// NewIdentifier creates an Identifier. A nil enumerator selects the OS default.
func NewIdentifier(e Enumerator) *Identifier {
	if e == nil {
		e = NewDefaultEnumerator()
	}
	return &Identifier{Enumerator: e}
}

// Identify enumerates devices and classifies the variant. Unrecognized hardware
// is reported as VariantUnknown with a nil error.
func (i *Identifier) Identify(ctx context.Context) (*Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := i.Enumerator
	if e == nil {
		e = NewDefaultEnumerator()
	}

	start := time.Now()
	raw, err := e.Enumerate(ctx)
	enumerationDuration.WithLabelValues(e.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("device enumeration failed", slog.String("source", e.Name()), slog.String("error", err.Error()))
		return nil, err
	}

	variant, matched := classify(Decode(raw))
	detectionTotal.WithLabelValues(variantLabel(variant)).Inc()

	slog.Debug("device classified",
		slog.String("source", e.Name()),
		slog.Int("bytes", len(raw)),
		slog.String("variant", variantLabel(variant)),
		slog.Any("matched", matched))

	return &Detection{
		Variant:    variant,
		MatchedIDs: matched,
		Source:     e.Name(),
	}, nil
}

func variantLabel(v Variant) string {
	b, _ := v.MarshalText()
	return string(b)
}
