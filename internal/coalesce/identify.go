package coalesce

import (
	"sort"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/boardid"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// identified is a ScrapedBoard annotated with its derived identity.
// model and boardKey are mutated by the profile-variant split in
// Phase B, so this type is intentionally not shared with boardid.
type identified struct {
	scraped model.ScrapedBoard
	brand   string
	model   string
	gender  model.Gender
	variant string
}

// genderTag collapses a free-form gender into the three-value tag
// used in boardKey: unisex, womens, kids. Mens collapses to unisex.
func genderTag(g string) model.Gender {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "womens":
		return model.GenderWomens
	case "kids", "youth":
		return model.GenderKids
	default:
		return model.GenderUnisex
	}
}

func boardKeyOf(brandName, modelName string, gender model.Gender) string {
	return strings.ToLower(brandName) + "|" + strings.ToLower(modelName) + "|" + string(gender)
}

// identifyAll runs Phase A: compute brand/model/gender/variant for
// every scraped record via its BoardIdentifier.
func identifyAll(boards []model.ScrapedBoard) []identified {
	out := make([]identified, 0, len(boards))
	for _, sb := range boards {
		id := boardid.New(sb)
		variant := ""
		if v := id.ProfileVariant(); v != nil {
			variant = *v
		}
		out = append(out, identified{
			scraped: sb,
			brand:   id.Brand(),
			model:   id.Model(),
			gender:  genderTag(id.Gender()),
			variant: variant,
		})
	}
	return out
}

// groupByBoardKey runs the boardKey half of Phase A, bucketing
// identified records by their pre-split boardKey.
func groupByBoardKey(items []identified) map[string][]identified {
	groups := make(map[string][]identified)
	for _, it := range items {
		key := boardKeyOf(it.brand, it.model, it.gender)
		groups[key] = append(groups[key], it)
	}
	return groups
}

// splitByProfileVariant runs Phase B on a single boardKey group: if
// at most one distinct non-null variant is present, the group stays
// one board; otherwise every record is assigned a variant and the
// group is partitioned into one sub-board per distinct variant.
func splitByProfileVariant(items []identified) map[string][]identified {
	distinct := map[string]bool{}
	for _, it := range items {
		if it.variant != "" {
			distinct[it.variant] = true
		}
	}
	if len(distinct) <= 1 {
		if len(items) == 0 {
			return nil
		}
		key := boardKeyOf(items[0].brand, items[0].model, items[0].gender)
		return map[string][]identified{key: items}
	}

	variantByProfile := map[string]string{}
	for _, it := range items {
		if it.variant == "" || it.scraped.Profile == "" {
			continue
		}
		p := strings.ToLower(strings.TrimSpace(it.scraped.Profile))
		if _, exists := variantByProfile[p]; !exists {
			variantByProfile[p] = it.variant
		}
	}

	sortedVariants := make([]string, 0, len(distinct))
	for v := range distinct {
		sortedVariants = append(sortedVariants, v)
	}
	sort.Strings(sortedVariants)
	fallback := sortedVariants[0]

	groups := map[string][]identified{}
	for _, it := range items {
		variant := it.variant
		if variant == "" {
			p := strings.ToLower(strings.TrimSpace(it.scraped.Profile))
			if v, ok := variantByProfile[p]; ok && p != "" {
				variant = v
			} else {
				variant = fallback
			}
		}
		split := it
		split.model = it.model + " " + titleCase(variant)
		key := boardKeyOf(split.brand, split.model, split.gender)
		groups[key] = append(groups[key], split)
	}
	return groups
}
