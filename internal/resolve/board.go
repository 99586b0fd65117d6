package resolve

import (
	"strconv"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// specFields lists every field the resolver fills on a Board.
var specFields = []string{"flex", "profile", "shape", "category", "abilityLevel",
	"terrain_piste", "terrain_powder", "terrain_park", "terrain_freeride", "terrain_freestyle"}

// GroupByField buckets every spec_sources row belonging to boardKey
// by its field name.
func GroupByField(boardKey string, rows []model.SpecSourceRow) map[string][]model.SpecSourceRow {
	grouped := map[string][]model.SpecSourceRow{}
	for _, row := range rows {
		if row.BoardKey != boardKey {
			continue
		}
		grouped[row.Field] = append(grouped[row.Field], row)
	}
	return grouped
}

// ResolveBoard resolves every spec field for one board and fills the
// result onto a copy of the supplied draft Board.
func ResolveBoard(board model.Board, rows []model.SpecSourceRow) (model.Board, map[string]FieldResolution) {
	grouped := GroupByField(board.BoardKey, rows)
	resolutions := make(map[string]FieldResolution, len(specFields))
	for _, field := range specFields {
		resolutions[field] = ResolveField(field, grouped[field])
	}

	if res := resolutions["flex"]; res.Resolved != "" {
		if f, err := strconv.Atoi(res.Resolved); err == nil {
			board.Flex = &f
		}
	}
	board.Profile = resolutions["profile"].Resolved
	board.Shape = resolutions["shape"].Resolved
	board.Category = resolutions["category"].Resolved

	if res := resolutions["abilityLevel"]; res.Resolved != "" {
		min, max, ok := strings.Cut(res.Resolved, "..")
		if ok {
			board.AbilityLevelMin = min
			board.AbilityLevelMax = max
		}
	}

	board.Terrain = model.TerrainScores{
		Piste:     terrainValue(resolutions["terrain_piste"]),
		Powder:    terrainValue(resolutions["terrain_powder"]),
		Park:      terrainValue(resolutions["terrain_park"]),
		Freeride:  terrainValue(resolutions["terrain_freeride"]),
		Freestyle: terrainValue(resolutions["terrain_freestyle"]),
	}

	board.BeginnerScore = ComputeBeginnerScore(board)

	return board, resolutions
}

func terrainValue(res FieldResolution) int {
	v, err := strconv.Atoi(res.Resolved)
	if err != nil {
		return 0
	}
	return v
}

var abilityScore = map[string]float64{
	"beginner":     1.0,
	"intermediate": 0.66,
	"advanced":     0.33,
	"expert":       0.0,
}

// ComputeBeginnerScore derives a 0..1 beginner-friendliness score
// (higher is friendlier) by averaging ability level, flex softness,
// and piste terrain suitability wherever each is known.
func ComputeBeginnerScore(board model.Board) *float64 {
	var total float64
	var weight float64

	if s, ok := abilityScore[board.AbilityLevelMin]; ok {
		total += s
		weight++
	}
	if board.Flex != nil {
		total += float64(10-*board.Flex) / 9.0
		weight++
	}
	if board.Category != "" {
		total += float64(board.Terrain.Piste) / 3.0
		weight++
	}

	if weight == 0 {
		return nil
	}
	score := total / weight
	return &score
}
