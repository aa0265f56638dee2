/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics defines the Prometheus collectors of a quest session.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (

	// NAVIGATOR

	QuestLocationsEnteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quest_locations_entered_total",
			Help: "Number of locations entered by the navigator.",
		},
	)
	QuestMovesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_moves_total",
			Help: "Number of successful moves by direction.",
		},
		[]string{"direction"},
	)
	QuestBlockedMovesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_blocked_moves_total",
			Help: "Number of moves asked towards a missing path, by direction.",
		},
		[]string{"direction"},
	)
	QuestInvalidInputsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quest_invalid_inputs_total",
			Help: "Number of unrecognized options typed by the player.",
		},
	)
	QuestTerminationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_terminations_total",
			Help: "Number of finished explorations by reason.",
		},
		[]string{"reason"},
	)

	// MAP

	QuestMapLocations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quest_map_locations",
			Help: "Number of locations of the loaded map.",
		},
	)
	QuestMapDeadEnds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quest_map_dead_ends",
			Help: "Number of dead ends of the loaded map.",
		},
	)
	QuestMapDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quest_map_depth",
			Help: "Depth of the deepest location of the loaded map.",
		},
	)

	// PROMETHEUS

	DefaultMetrics = []prometheus.Collector{
		QuestLocationsEnteredTotal,
		QuestMovesTotal,
		QuestBlockedMovesTotal,
		QuestInvalidInputsTotal,
		QuestTerminationsTotal,
		QuestMapLocations,
		QuestMapDeadEnds,
		QuestMapDepth,
	}
)

// Register adds the quest collectors to the given registry.
func Register(r prometheus.Registerer) error {
	for _, c := range DefaultMetrics {
		if err := r.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return errors.Wrap(err, "metrics: register")
		}
	}
	return nil
}

// WriteTextfile registers the quest collectors in a fresh registry and
// writes them to path in the Prometheus text format, ready for the
// node exporter textfile collector.
func WriteTextfile(path string) error {
	r := prometheus.NewRegistry()
	if err := Register(r); err != nil {
		return err
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, r), "metrics: writing %s", path)
}
