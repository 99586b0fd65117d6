package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/coalesce"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

func usd(v float64) *float64 { return &v }

func TestResolveAndBackfillFillsDiscountFromMSRP(t *testing.T) {
	boardKey := "burton|custom camber|unisex"
	c := coalesce.Result{
		Boards: []model.Board{{
			BoardKey: boardKey, Brand: "Burton", Model: "Custom Camber", Gender: model.GenderUnisex,
			MSRPUsd: usd(500),
		}},
		Listings: []model.Listing{{
			ID: "l1", BoardKey: boardKey, SalePriceUsd: usd(400),
		}},
	}

	boards, listings := resolveAndBackfill(c)
	require.Len(t, boards, 1)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].DiscountPercent)
	assert.Equal(t, 20, *listings[0].DiscountPercent)
}

func TestResolveAndBackfillSkipsWhenDiscountAlreadySet(t *testing.T) {
	boardKey := "burton|custom camber|unisex"
	existing := 5
	c := coalesce.Result{
		Boards: []model.Board{{BoardKey: boardKey, MSRPUsd: usd(500)}},
		Listings: []model.Listing{{
			ID: "l1", BoardKey: boardKey, SalePriceUsd: usd(400), DiscountPercent: &existing,
		}},
	}

	_, listings := resolveAndBackfill(c)
	require.Len(t, listings, 1)
	assert.Equal(t, 5, *listings[0].DiscountPercent)
}

func TestResolveAndBackfillSkipsWhenNoMSRP(t *testing.T) {
	boardKey := "burton|custom camber|unisex"
	c := coalesce.Result{
		Boards:   []model.Board{{BoardKey: boardKey}},
		Listings: []model.Listing{{ID: "l1", BoardKey: boardKey, SalePriceUsd: usd(400)}},
	}

	_, listings := resolveAndBackfill(c)
	assert.Nil(t, listings[0].DiscountPercent)
}
