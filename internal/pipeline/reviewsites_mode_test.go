package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
	"github.com/ryanrhee/snowboard-db-sub000/internal/reviewsite"
)

type fakeEmptySitemapFetcher struct{}

func (fakeEmptySitemapFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return []byte(`<sitemapindex></sitemapindex>`), nil
}

func TestOrchestratorRunReviewSitesWithNoReviewConfiguredReturnsStoredBoards(t *testing.T) {
	s := openPipelineTestStore(t)
	now := time.Unix(1700000000, 0)
	require.NoError(t, s.UpsertBoard(model.Board{
		BoardKey: "burton|custom camber|unisex", Brand: "Burton", Model: "Custom Camber",
		Gender: model.GenderUnisex, CreatedAt: now, UpdatedAt: now,
	}))

	o := &Orchestrator{Store: s}
	result, err := o.Run(context.Background(), Scope{From: "review-sites"})
	require.NoError(t, err)
	require.Len(t, result.Boards, 1)
}

func TestOrchestratorRunReviewSitesWithNoMatchesLeavesBoardsUnchanged(t *testing.T) {
	s := openPipelineTestStore(t)
	now := time.Unix(1700000000, 0)
	boardKey := "burton|custom camber|unisex"
	require.NoError(t, s.UpsertBoard(model.Board{
		BoardKey: boardKey, Brand: "Burton", Model: "Custom Camber",
		Gender: model.GenderUnisex, CreatedAt: now, UpdatedAt: now,
	}))

	o := &Orchestrator{
		Store: s,
		Review: &reviewsite.Enricher{
			SiteName:   "the-good-ride",
			SitemapURL: "https://example.com/sitemap.xml",
			Fetcher:    fakeEmptySitemapFetcher{},
		},
		now: func() time.Time { return now },
	}

	result, err := o.Run(context.Background(), Scope{From: "review-sites"})
	require.NoError(t, err)
	require.Len(t, result.Boards, 1)
	assert.Nil(t, result.Boards[0].Board.Flex)
}

func TestIdentityKeyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, identityKey("Burton", "Custom Camber"), identityKey("burton", "CUSTOM CAMBER"))
}
