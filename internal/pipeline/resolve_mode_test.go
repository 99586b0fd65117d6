package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func TestOrchestratorRunResolveRecomputesFromExistingSources(t *testing.T) {
	s := openPipelineTestStore(t)
	boardKey := "burton|custom camber|unisex"
	now := time.Unix(1700000000, 0)

	require.NoError(t, s.UpsertBoard(model.Board{
		BoardKey: boardKey, Brand: "Burton", Model: "Custom Camber", Gender: model.GenderUnisex,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.WriteSpecSources([]model.SpecSourceRow{
		{BoardKey: boardKey, Field: "flex", Source: "manufacturer:burton", Value: "6", Timestamp: now},
	}))

	o := &Orchestrator{Store: s, now: func() time.Time { return now }}
	result, err := o.Run(context.Background(), Scope{From: "resolve"})
	require.NoError(t, err)
	require.Len(t, result.Boards, 1)
	require.NotNil(t, result.Boards[0].Board.Flex)
	assert.Equal(t, 6, *result.Boards[0].Board.Flex)
}

func TestOrchestratorRunResolveWithNoBoardsReturnsEmpty(t *testing.T) {
	s := openPipelineTestStore(t)
	o := &Orchestrator{Store: s}
	result, err := o.Run(context.Background(), Scope{From: "resolve"})
	require.NoError(t, err)
	assert.Empty(t, result.Boards)
}
