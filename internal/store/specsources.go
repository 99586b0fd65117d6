package store

import (
	"fmt"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// WriteSpecSources upserts one board's provenance rows, keyed by the
// (board_key, field, source) triple (spec §3, §6).
func (s *Store) WriteSpecSources(rows []model.SpecSourceRow) error {
	if len(rows) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write spec sources: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO spec_sources (board_key, field, source, value, source_url, ts)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(board_key, field, source) DO UPDATE SET
			value = excluded.value,
			source_url = excluded.source_url,
			ts = excluded.ts`)
	if err != nil {
		return fmt.Errorf("prepare write spec sources: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.BoardKey, r.Field, r.Source, r.Value, r.SourceURL, r.Timestamp.UnixMilli()); err != nil {
			return fmt.Errorf("write spec source %s/%s/%s: %w", r.BoardKey, r.Field, r.Source, err)
		}
	}

	return tx.Commit()
}

// LoadSpecSources returns every provenance row for one board.
func (s *Store) LoadSpecSources(boardKey string) ([]model.SpecSourceRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT board_key, field, source, value, source_url, ts FROM spec_sources WHERE board_key = ?`,
		boardKey,
	)
	if err != nil {
		return nil, fmt.Errorf("load spec sources for %s: %w", boardKey, err)
	}
	defer rows.Close()

	var out []model.SpecSourceRow
	for rows.Next() {
		var r model.SpecSourceRow
		var tsMs int64
		if err := rows.Scan(&r.BoardKey, &r.Field, &r.Source, &r.Value, &r.SourceURL, &tsMs); err != nil {
			return nil, fmt.Errorf("scan spec source: %w", err)
		}
		r.Timestamp = time.UnixMilli(tsMs)
		out = append(out, r)
	}
	return out, rows.Err()
}
