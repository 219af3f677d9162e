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

package quicktest

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quicktest_run_duration_seconds",
			Help:    "Time taken by a complete quicktest run",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	runTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quicktest_run_total",
			Help: "Total number of quicktest runs",
		},
		[]string{"status"}, // passed, failed, unsupported, canceled
	)

	detectDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quicktest_detect_duration_seconds",
			Help:    "Time taken to build a detect report",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)
)

// WriteMetrics writes every registered metric to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteMetrics(path string) error {
	return WriteMetricsFrom(prometheus.DefaultGatherer, path)
}

// WriteMetricsFrom writes the metrics of g to path.
func WriteMetricsFrom(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	return nil
}
