package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func TestFlexConsensusRounding(t *testing.T) {
	rows := []model.SpecSourceRow{
		{BoardKey: "burton|custom|unisex", Field: "flex", Source: "retailer:evo", Value: "4.5"},
		{BoardKey: "burton|custom|unisex", Field: "flex", Source: "retailer:rei", Value: "5"},
	}
	res := ResolveField("flex", rows)
	assert.Equal(t, "5", res.Resolved)
	assert.True(t, res.Agreement)
}

func TestManufacturerWinsPriority(t *testing.T) {
	rows := []model.SpecSourceRow{
		{Field: "profile", Source: "retailer:evo", Value: "camber"},
		{Field: "profile", Source: "manufacturer:burton", Value: "hybrid_camber"},
	}
	res := ResolveField("profile", rows)
	assert.Equal(t, "hybrid_camber", res.Resolved)
	assert.Equal(t, "manufacturer:burton", res.ResolvedSource)
	assert.False(t, res.Agreement)
}

func TestConsensusRequiresTwoDistinctSources(t *testing.T) {
	rows := []model.SpecSourceRow{
		{Field: "shape", Source: "retailer:evo", Value: "directional"},
	}
	res := ResolveField("shape", rows)
	assert.Equal(t, "directional", res.Resolved)
	assert.True(t, res.Agreement)

	_, hasConsensus := detectConsensus("shape", rows)
	assert.False(t, hasConsensus)
}

func TestNoRowsResolvesToNull(t *testing.T) {
	res := ResolveField("shape", nil)
	assert.Equal(t, "", res.Resolved)
	assert.Equal(t, "", res.ResolvedSource)
}

func TestResolverDeterministic(t *testing.T) {
	rows := []model.SpecSourceRow{
		{Field: "category", Source: "retailer:evo", Value: "powder"},
		{Field: "category", Source: "retailer:rei", Value: "powder"},
		{Field: "category", Source: "review-site:the-good-ride", Value: "all_mountain"},
	}
	first := ResolveField("category", rows)
	second := ResolveField("category", rows)
	assert.Equal(t, first.Resolved, second.Resolved)
	assert.Equal(t, first.ResolvedSource, second.ResolvedSource)
}

func TestLLMExcludedFromConsensus(t *testing.T) {
	rows := []model.SpecSourceRow{
		{Field: "shape", Source: "llm", Value: "tapered"},
		{Field: "shape", Source: "llm", Value: "tapered"},
		{Field: "shape", Source: "retailer:evo", Value: "directional"},
	}
	_, hasConsensus := detectConsensus("shape", rows)
	assert.False(t, hasConsensus)
}

func TestResolveBoardFillsSpecsAndBeginnerScore(t *testing.T) {
	board := model.Board{BoardKey: "burton|custom|unisex"}
	now := time.Unix(0, 0)
	rows := []model.SpecSourceRow{
		{BoardKey: board.BoardKey, Field: "flex", Source: "retailer:evo", Value: "3", Timestamp: now},
		{BoardKey: board.BoardKey, Field: "abilityLevel", Source: "retailer:evo", Value: "beginner..intermediate", Timestamp: now},
		{BoardKey: board.BoardKey, Field: "category", Source: "retailer:evo", Value: "all_mountain", Timestamp: now},
		{BoardKey: board.BoardKey, Field: "terrain_piste", Source: "retailer:evo", Value: "3", Timestamp: now},
	}
	resolved, _ := ResolveBoard(board, rows)

	require.NotNil(t, resolved.Flex)
	assert.Equal(t, 3, *resolved.Flex)
	assert.Equal(t, "beginner", resolved.AbilityLevelMin)
	assert.Equal(t, "intermediate", resolved.AbilityLevelMax)
	assert.Equal(t, 3, resolved.Terrain.Piste)
	require.NotNil(t, resolved.BeginnerScore)
	assert.Greater(t, *resolved.BeginnerScore, 0.5)
}
