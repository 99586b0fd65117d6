package store

import (
	"fmt"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// InsertListings writes every listing for one run, replacing any
// existing row with the same id (a listing's id is a deterministic
// hash of retailer+url+lengthCm, so re-scraping the same offer
// overwrites in place).
func (s *Store) InsertListings(listings []model.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert listings: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO listings (
			id, board_key, run_id, retailer, region, url, currency,
			original_price, sale_price, sale_price_usd, discount_percent,
			length_cm, width_mm, availability, condition, gender, stock_count, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert listings: %w", err)
	}
	defer stmt.Close()

	for _, l := range listings {
		if _, err := stmt.Exec(
			l.ID, l.BoardKey, l.RunID, l.Retailer, l.Region, l.URL, l.Currency,
			l.OriginalPrice, l.SalePrice, l.SalePriceUsd, l.DiscountPercent,
			l.LengthCm, l.WidthMm, string(l.Availability), string(l.Condition), string(l.Gender),
			l.StockCount, l.ScrapedAt.UnixMilli(),
		); err != nil {
			return fmt.Errorf("insert listing %s: %w", l.ID, err)
		}
	}

	return tx.Commit()
}

// ListListingsForBoard returns every listing currently stored for one board.
func (s *Store) ListListingsForBoard(boardKey string) ([]model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, board_key, run_id, retailer, region, url, currency,
			original_price, sale_price, sale_price_usd, discount_percent,
			length_cm, width_mm, availability, condition, gender, stock_count, scraped_at
		FROM listings WHERE board_key = ?`, boardKey)
	if err != nil {
		return nil, fmt.Errorf("list listings for %s: %w", boardKey, err)
	}
	defer rows.Close()

	var out []model.Listing
	for rows.Next() {
		var l model.Listing
		var availability, condition, gender string
		var scrapedAtMs int64
		if err := rows.Scan(
			&l.ID, &l.BoardKey, &l.RunID, &l.Retailer, &l.Region, &l.URL, &l.Currency,
			&l.OriginalPrice, &l.SalePrice, &l.SalePriceUsd, &l.DiscountPercent,
			&l.LengthCm, &l.WidthMm, &availability, &condition, &gender, &l.StockCount, &scrapedAtMs,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		l.Availability = model.Availability(availability)
		l.Condition = model.Condition(condition)
		l.Gender = model.Gender(gender)
		l.ScrapedAt = time.UnixMilli(scrapedAtMs)
		out = append(out, l)
	}
	return out, rows.Err()
}
