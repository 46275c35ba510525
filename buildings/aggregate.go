package buildings

import (
	"math/rand"
	"sort"
)

// DisplayCap is the maximum number of points rendered on the map. When a
// filtered set exceeds it, a uniform random sample of exactly DisplayCap
// records is shown; the cap is presentation-only and the reported total
// stays pre-cap.
const DisplayCap = 1000

// CountByType returns the frequency of each building type.
func CountByType(records []Building) map[string]int {
	counts := make(map[string]int)
	for _, b := range records {
		counts[b.BuildingType]++
	}
	return counts
}

// UnitBucket pairs an exact unit-count value with its frequency.
type UnitBucket struct {
	Units float64 `json:"units"`
	Count int     `json:"count"`
}

// CountByUnits returns the frequency of each exact unit-count value,
// ascending by value. No range bucketing: equal values group together,
// distinct values do not.
func CountByUnits(records []Building) []UnitBucket {
	counts := make(map[float64]int)
	for _, b := range records {
		counts[b.UnitCount]++
	}

	buckets := make([]UnitBucket, 0, len(counts))
	for units, count := range counts {
		buckets = append(buckets, UnitBucket{Units: units, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Units < buckets[j].Units })
	return buckets
}

// Sample returns records unchanged when within limit, otherwise a uniform
// random sample of exactly limit records, each input record equally likely.
// A nil rng uses the shared package source.
func Sample(records []Building, limit int, rng *rand.Rand) []Building {
	if len(records) <= limit {
		return records
	}

	perm := rand.Perm
	if rng != nil {
		perm = rng.Perm
	}

	out := make([]Building, 0, limit)
	for _, i := range perm(len(records))[:limit] {
		out = append(out, records[i])
	}
	return out
}
