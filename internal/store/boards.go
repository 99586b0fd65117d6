package store

import (
	"fmt"
	"time"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
	"github.com/ryanrhee/snowboard-db-sub000/internal/model"
)

// UpsertBoard inserts or updates a board row, keyed by boardKey (spec
// §7: "the pipeline is idempotent at the Board level (upsert by
// boardKey)").
func (s *Store) UpsertBoard(b model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO boards (
			board_key, brand, model, gender, flex, profile, shape, category,
			ability_level_min, ability_level_max,
			terrain_piste, terrain_powder, terrain_park, terrain_freeride, terrain_freestyle,
			msrp_usd, manufacturer_url, description, beginner_score, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(board_key) DO UPDATE SET
			brand = excluded.brand,
			model = excluded.model,
			gender = excluded.gender,
			flex = excluded.flex,
			profile = excluded.profile,
			shape = excluded.shape,
			category = excluded.category,
			ability_level_min = excluded.ability_level_min,
			ability_level_max = excluded.ability_level_max,
			terrain_piste = excluded.terrain_piste,
			terrain_powder = excluded.terrain_powder,
			terrain_park = excluded.terrain_park,
			terrain_freeride = excluded.terrain_freeride,
			terrain_freestyle = excluded.terrain_freestyle,
			msrp_usd = excluded.msrp_usd,
			manufacturer_url = excluded.manufacturer_url,
			description = excluded.description,
			beginner_score = excluded.beginner_score,
			updated_at = excluded.updated_at`,
		b.BoardKey, b.Brand, b.Model, string(b.Gender), b.Flex, b.Profile, b.Shape, b.Category,
		b.AbilityLevelMin, b.AbilityLevelMax,
		b.Terrain.Piste, b.Terrain.Powder, b.Terrain.Park, b.Terrain.Freeride, b.Terrain.Freestyle,
		b.MSRPUsd, b.ManufacturerURL, b.Description, b.BeginnerScore,
		b.CreatedAt.UnixMilli(), b.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert board %s: %w", b.BoardKey, err)
	}
	return nil
}

// GetBoard loads one board by key, returning (zero, false) if absent.
func (s *Store) GetBoard(boardKey string) (model.Board, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT board_key, brand, model, gender, flex, profile, shape, category,
			ability_level_min, ability_level_max,
			terrain_piste, terrain_powder, terrain_park, terrain_freeride, terrain_freestyle,
			msrp_usd, manufacturer_url, description, beginner_score, created_at, updated_at
		FROM boards WHERE board_key = ?`, boardKey)

	b, err := scanBoard(row)
	if err != nil {
		return model.Board{}, false, nil
	}
	return b, true, nil
}

// ListBoards returns every board currently stored.
func (s *Store) ListBoards() ([]model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT board_key, brand, model, gender, flex, profile, shape, category,
			ability_level_min, ability_level_max,
			terrain_piste, terrain_powder, terrain_park, terrain_freeride, terrain_freestyle,
			msrp_usd, manufacturer_url, description, beginner_score, created_at, updated_at
		FROM boards`)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var out []model.Board
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBoard(row rowScanner) (model.Board, error) {
	var b model.Board
	var gender string
	var createdAtMs, updatedAtMs int64
	err := row.Scan(
		&b.BoardKey, &b.Brand, &b.Model, &gender, &b.Flex, &b.Profile, &b.Shape, &b.Category,
		&b.AbilityLevelMin, &b.AbilityLevelMax,
		&b.Terrain.Piste, &b.Terrain.Powder, &b.Terrain.Park, &b.Terrain.Freeride, &b.Terrain.Freestyle,
		&b.MSRPUsd, &b.ManufacturerURL, &b.Description, &b.BeginnerScore, &createdAtMs, &updatedAtMs,
	)
	if err != nil {
		return model.Board{}, err
	}
	b.Gender = model.Gender(gender)
	b.CreatedAt = time.UnixMilli(createdAtMs)
	b.UpdatedAt = time.UnixMilli(updatedAtMs)
	return b, nil
}

// PruneOrphanBoards deletes every board with no remaining listing
// (spec §4.8 step 8, §8 scenario 8), returning the number removed.
func (s *Store) PruneOrphanBoards() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.Exec(`DELETE FROM boards WHERE board_key NOT IN (SELECT DISTINCT board_key FROM listings)`)
	if err != nil {
		return 0, fmt.Errorf("prune orphan boards: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		logging.Store("pruned %d orphan boards", n)
	}
	return n, nil
}
