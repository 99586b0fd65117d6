// Package resolve implements the priority-ordered spec resolver
// (spec §4.6): for every (boardKey, field), it picks a winning value
// out of the spec_sources rows written by the coalescer.
package resolve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// FieldResolution is the result of resolving one (boardKey, field).
type FieldResolution struct {
	Field          string
	Resolved       string
	ResolvedSource string
	Agreement      bool
	Disagreement   bool
	Sources        []model.SpecSourceRow
}

func sourcePriority(source string) int {
	switch {
	case source == "manufacturer" || strings.HasPrefix(source, "manufacturer:"):
		return 4
	case source == "review-site" || strings.HasPrefix(source, "review-site:"):
		return 3
	case source == "judgment":
		return 3
	case strings.HasPrefix(source, "retailer:"):
		return 2
	case source == "llm":
		return 1
	default:
		return 0
	}
}

func isManufacturer(source string) bool {
	return source == "manufacturer" || strings.HasPrefix(source, "manufacturer:")
}

// excludedFromConsensus reports whether a source is excluded from
// consensus grouping: manufacturer, llm, and judgment rows never
// count toward a consensus, only retailers and review sites do.
func excludedFromConsensus(source string) bool {
	return isManufacturer(source) || source == "llm" || source == "judgment"
}

// normalizedValue makes two spec_sources values comparable: flex
// values are compared after rounding to the nearest integer, every
// other field is compared by trimmed byte-equality.
func normalizedValue(field, value string) string {
	value = strings.TrimSpace(value)
	if field != "flex" {
		return value
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return strconv.Itoa(int(f + 0.5))
}

// ResolveField runs the per-field resolution algorithm over every
// spec_sources row for one (boardKey, field) pair.
func ResolveField(field string, rows []model.SpecSourceRow) FieldResolution {
	if len(rows) == 0 {
		return FieldResolution{Field: field}
	}

	sorted := make([]model.SpecSourceRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sourcePriority(sorted[i].Source) > sourcePriority(sorted[j].Source)
	})

	top := sorted[0]

	consensusValue, hasConsensus := detectConsensus(field, sorted)

	var manufacturerValue string
	var hasManufacturer bool
	for _, row := range sorted {
		if isManufacturer(row.Source) {
			manufacturerValue = normalizedValue(field, row.Value)
			hasManufacturer = true
			break
		}
	}

	disagreement := hasManufacturer && hasConsensus && manufacturerValue != consensusValue
	recordDisagreement(field, disagreement)

	agreement := allValuesAgree(field, sorted)

	return FieldResolution{
		Field:          field,
		Resolved:       normalizedValue(field, top.Value),
		ResolvedSource: top.Source,
		Agreement:      agreement,
		Disagreement:   disagreement,
		Sources:        sorted,
	}
}

func detectConsensus(field string, rows []model.SpecSourceRow) (string, bool) {
	counts := map[string]map[string]bool{}
	for _, row := range rows {
		if excludedFromConsensus(row.Source) {
			continue
		}
		v := normalizedValue(field, row.Value)
		if counts[v] == nil {
			counts[v] = map[string]bool{}
		}
		counts[v][row.Source] = true
	}

	best := ""
	bestCount := 0
	for v, sources := range counts {
		if len(sources) >= 2 && len(sources) > bestCount {
			best = v
			bestCount = len(sources)
		}
	}
	return best, bestCount >= 2
}

func allValuesAgree(field string, rows []model.SpecSourceRow) bool {
	if len(rows) == 0 {
		return true
	}
	first := normalizedValue(field, rows[0].Value)
	for _, row := range rows[1:] {
		if normalizedValue(field, row.Value) != first {
			return false
		}
	}
	return true
}

// recordDisagreement is the historical LLM-adjudication hook for
// manufacturer-vs-consensus disagreements. It is intentionally a
// no-op: the resolver defaults to the priority-ordered winner.
func recordDisagreement(field string, disagreement bool) {
	_ = field
	_ = disagreement
}
