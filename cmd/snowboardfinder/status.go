package main

import (
	"fmt"

	"github.com/ryanrhee/snowboard-db-sub000/internal/store"
)

// retailerListingCounts counts currently-stored listings per retailer,
// the cache-coverage signal exposed by scrape-status.
func retailerListingCounts(s *store.Store) (map[string]int, error) {
	boards, err := s.ListBoards()
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	counts := make(map[string]int)
	for _, b := range boards {
		listings, err := s.ListListingsForBoard(b.BoardKey)
		if err != nil {
			return nil, fmt.Errorf("list listings for %s: %w", b.BoardKey, err)
		}
		for _, l := range listings {
			counts[l.Retailer]++
		}
	}
	return counts, nil
}
