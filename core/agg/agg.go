// Package agg has metric collection logic for pillar configurations.
package agg

import (
	"github.com/lmarsden/fullback/schema"
)

// CollectPillarMetrics flattens a pillar configuration into one deduplicated
// metric list, in pillar presentation order. A metric shared by two pillars
// appears once.
func CollectPillarMetrics(pillarMetrics map[schema.PillarKey][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, pillar := range schema.AllPillars {
		for _, name := range pillarMetrics[pillar] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// CollectPerNinetyBases returns the deduplicated base column names behind
// every metric that wants a per-90 rendering. Metrics already expressed as
// raw columns contribute nothing.
func CollectPerNinetyBases(metrics []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range metrics {
		m := schema.ParseMetric(name)
		if !m.PerNinety {
			continue
		}
		if _, ok := seen[m.Base]; ok {
			continue
		}
		seen[m.Base] = struct{}{}
		out = append(out, m.Base)
	}
	return out
}
