// Copyright (c) 2025, Glider Kitchen Authors.  All rights reserved.
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

package kitchen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Prediction metrics
	predictDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kitchen_predict_duration_seconds",
			Help:    "Duration of recipe prediction searches in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)
	predictNodesExplored = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kitchen_predict_nodes_explored",
			Help:    "Number of ingredient sets evaluated per prediction",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)
	predictResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kitchen_predict_results",
			Help:    "Number of valid recipes returned per prediction",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	// Recipe mutation metrics
	recipeMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kitchen_recipe_mutations_total",
			Help: "Total number of successful recipe mutations",
		},
		[]string{"category", "op"},
	)
)
