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

package inference

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Tensor is a dense float32 tensor.
type Tensor struct {
	Shape []int64
	Data  []float32
}

// NumElements returns the product of the shape dimensions.
func NumElements(shape []int64) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range shape {
		n *= int(d)
	}
	return n
}

// RandomInput returns a tensor of the given shape with values in [0, 1).
// A nil rng uses the package-level source.
func RandomInput(shape []int64, rng *rand.Rand) Tensor {
	data := make([]float32, NumElements(shape))
	for i := range data {
		if rng != nil {
			data[i] = rng.Float32()
		} else {
			data[i] = rand.Float32()
		}
	}
	s := make([]int64, len(shape))
	copy(s, shape)
	return Tensor{Shape: s, Data: data}
}

// Runtime creates inference sessions.
type Runtime interface {
	NewSession(ctx context.Context, cfg Config) (Session, error)
}

// Session is a loaded model ready to run.
type Session interface {
	// Run executes one forward pass with the named inputs.
	Run(ctx context.Context, inputs map[string]Tensor) error
	// Destroy releases the session.
	Destroy() error
}

func checkTensor(name string, t Tensor) error {
	if want := NumElements(t.Shape); want != len(t.Data) {
		return fmt.Errorf("input %q: shape %v needs %d values, got %d", name, t.Shape, want, len(t.Data))
	}
	return nil
}
