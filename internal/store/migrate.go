package store

import (
	"fmt"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

// legacyCacheTables are cache tables that, in older deployments, lived
// in the primary database file before the cache DB was split out.
var legacyCacheTables = []string{"http_cache", "review_sitemap_cache", "review_url_map"}

// MigrateLegacyCache moves any legacy cache rows from the primary
// database into cacheDB and drops the source tables, a one-time
// migration for databases created before the split (spec §6).
func MigrateLegacyCache(primary *Store, cacheDB *CacheDB) error {
	for _, table := range legacyCacheTables {
		exists, err := tableExists(primary.db, table)
		if err != nil {
			return fmt.Errorf("check legacy table %s: %w", table, err)
		}
		if !exists {
			continue
		}

		if err := copyTableRows(primary.db, cacheDB.db, table); err != nil {
			return fmt.Errorf("migrate legacy table %s: %w", table, err)
		}

		if _, err := primary.db.Exec(fmt.Sprintf("DROP TABLE %s", table)); err != nil {
			return fmt.Errorf("drop legacy table %s: %w", table, err)
		}
		logging.Store("migrated legacy cache table %s to cache db", table)
	}
	return nil
}
