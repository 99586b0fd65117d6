package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func TestWriteSpecSourcesThenLoad(t *testing.T) {
	s := openTestStore(t)
	boardKey := "burton|custom camber|unisex"

	rows := []model.SpecSourceRow{
		{BoardKey: boardKey, Field: "flex", Source: "manufacturer:burton", Value: "6", Timestamp: time.Unix(1700000000, 0)},
		{BoardKey: boardKey, Field: "profile", Source: "retailer:tactics", Value: "camber", Timestamp: time.Unix(1700000000, 0)},
	}
	require.NoError(t, s.WriteSpecSources(rows))

	got, err := s.LoadSpecSources(boardKey)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWriteSpecSourcesUpsertsByTriple(t *testing.T) {
	s := openTestStore(t)
	boardKey := "burton|custom camber|unisex"

	require.NoError(t, s.WriteSpecSources([]model.SpecSourceRow{
		{BoardKey: boardKey, Field: "flex", Source: "manufacturer:burton", Value: "6", Timestamp: time.Unix(1700000000, 0)},
	}))
	require.NoError(t, s.WriteSpecSources([]model.SpecSourceRow{
		{BoardKey: boardKey, Field: "flex", Source: "manufacturer:burton", Value: "7", Timestamp: time.Unix(1700000100, 0)},
	}))

	got, err := s.LoadSpecSources(boardKey)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].Value)
}

func TestWriteSpecSourcesEmptyIsNoOp(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.WriteSpecSources(nil))
}
