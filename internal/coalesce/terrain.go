package coalesce

import "github.com/ryanrhee/snowboard-db-sub000/internal/model"

// terrainByCategory derives a default terrain-score profile from a
// normalized category when a scraper supplies no terrain_* extras.
var terrainByCategory = map[string]model.TerrainScores{
	"all_mountain": {Piste: 3, Powder: 1, Park: 2, Freeride: 2, Freestyle: 2},
	"freestyle":    {Piste: 1, Powder: 0, Park: 3, Freeride: 0, Freestyle: 3},
	"freeride":     {Piste: 1, Powder: 2, Park: 0, Freeride: 3, Freestyle: 1},
	"powder":       {Piste: 1, Powder: 3, Park: 0, Freeride: 2, Freestyle: 1},
	"park":         {Piste: 1, Powder: 0, Park: 3, Freeride: 0, Freestyle: 2},
}
