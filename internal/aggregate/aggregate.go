package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/jovalie/political-forecast/internal/types"
)

// BuildStateRecord assembles one region's record from its scored topics:
// drop topics under the relevance floor, rank descending by score, dedupe
// by title, truncate to topN, and derive the headline topic from rank 0.
// Sorting happens before dedup, so the highest-scored duplicate is the one
// retained.
func BuildStateRecord(region types.Region, topics []types.Topic, now time.Time, topN, floor int) types.StateRecord {
	kept := make([]types.Topic, 0, len(topics))
	for _, t := range topics {
		if t.RelevanceScore >= floor {
			kept = append(kept, t)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RelevanceScore > kept[j].RelevanceScore
	})

	seen := make(map[string]bool, len(kept))
	deduped := make([]types.Topic, 0, len(kept))
	for _, t := range kept {
		key := strings.ToLower(t.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, t)
	}

	if len(deduped) > topN {
		deduped = deduped[:topN]
	}

	record := types.StateRecord{
		Name:      region.Name,
		Code:      region.Code,
		Topics:    deduped,
		Timestamp: now,
	}
	if len(deduped) > 0 {
		record.TopTopic = deduped[0].Name
		record.TrendingScore = deduped[0].RelevanceScore
		record.Category = deduped[0].Category
	}
	return record
}

// Merge produces the next aggregate store from the prior one and the
// current run's results. Merge is by region name, last write wins per key;
// regions absent from the current run keep their previous record, so a
// partial-failure run never discards previously successful data.
//
// Merge is pure: neither input is mutated.
func Merge(old types.AggregateFile, updates []types.StateRecord, now time.Time) types.AggregateFile {
	byName := make(map[string]types.StateRecord, len(old.States)+len(updates))
	for _, s := range old.States {
		byName[s.Name] = s
	}
	for _, s := range updates {
		byName[s.Name] = s
	}

	states := make([]types.StateRecord, 0, len(byName))
	for _, s := range byName {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Name < states[j].Name
	})

	return types.AggregateFile{
		Timestamp: now,
		States:    states,
	}
}
