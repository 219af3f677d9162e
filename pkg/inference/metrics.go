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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionCreateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quicktest_session_create_duration_seconds",
			Help:    "Time taken to construct the inference session, model compilation included",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	inferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quicktest_inference_duration_seconds",
			Help:    "Time taken by the single forward pass",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	smokeTestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quicktest_smoke_test_total",
			Help: "Total number of smoke test runs by result",
		},
		[]string{"result"}, // passed, session_error, run_error
	)
)
