package buildings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store loads the full building dataset from Postgres. The whole table is
// small enough to query and filter in memory on every request; scaling past
// that is an explicit non-goal, and the 1000-point display cap is the only
// concession to size.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a store over the given pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Load queries the presampled_points table and returns every record with
// fields coerced to their canonical types. Zipcodes stay strings even when
// numeric so substring matching works on the formatted value.
func (s *Store) Load(ctx context.Context) ([]Building, error) {
	rows, err := s.db.Query(ctx,
		`SELECT tunits, vacant, zipcode_str, building_type, x, y FROM presampled_points`)
	if err != nil {
		return nil, fmt.Errorf("query presampled_points: %w", err)
	}
	defer rows.Close()

	var records []Building
	for rows.Next() {
		var b Building
		if err := rows.Scan(&b.UnitCount, &b.Vacant, &b.Zipcode, &b.BuildingType, &b.X, &b.Y); err != nil {
			return nil, fmt.Errorf("scan presampled_points row: %w", err)
		}
		b.Lat = b.Y
		b.Lon = b.X
		records = append(records, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read presampled_points: %w", err)
	}

	return records, nil
}
