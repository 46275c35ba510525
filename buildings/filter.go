package buildings

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/EdwinMichaelLab/epic-dashboard/httpx"
)

// Vacancy is the tri-state vacancy selector.
type Vacancy string

const (
	VacancyAll       Vacancy = "All"
	VacancyVacant    Vacancy = "Vacant"
	VacancyNotVacant Vacancy = "Not Vacant"
)

// Filter holds one render cycle's parameter set. Unit bounds are inclusive
// on both ends. An empty Types slice matches nothing; an empty Zipcode
// matches everything.
type Filter struct {
	MinUnits float64
	MaxUnits float64
	Zipcode  string
	Vacancy  Vacancy
	Types    []string
}

// Apply returns the records satisfying every predicate. Pure: the input
// slice is never modified and an empty input yields an empty result.
func (f Filter) Apply(records []Building) []Building {
	typeSet := make(map[string]struct{}, len(f.Types))
	for _, t := range f.Types {
		typeSet[t] = struct{}{}
	}

	var out []Building
	for _, b := range records {
		if b.UnitCount < f.MinUnits || b.UnitCount > f.MaxUnits {
			continue
		}
		if _, ok := typeSet[b.BuildingType]; !ok {
			continue
		}
		if !strings.Contains(b.Zipcode, f.Zipcode) {
			continue
		}
		if f.Vacancy != VacancyAll && b.Vacant != (f.Vacancy == VacancyVacant) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FromQuery builds a Filter from request query parameters, defaulting each
// control to its widest setting over the observed records: the full unit
// range, every observed building type, no zipcode restriction, vacancy All.
// A types parameter that is present but empty selects no types at all.
func FromQuery(q url.Values, records []Building) (Filter, error) {
	minUnits, maxUnits := UnitBounds(records)

	f := Filter{
		MinUnits: minUnits,
		MaxUnits: maxUnits,
		Vacancy:  VacancyAll,
		Types:    ObservedTypes(records),
	}

	var err error
	if f.MinUnits, err = httpx.QueryFloat(q, "min_units", f.MinUnits); err != nil {
		return Filter{}, err
	}
	if f.MaxUnits, err = httpx.QueryFloat(q, "max_units", f.MaxUnits); err != nil {
		return Filter{}, err
	}

	f.Zipcode = q.Get("zipcode")

	if raw := q.Get("vacancy"); raw != "" {
		switch Vacancy(raw) {
		case VacancyAll, VacancyVacant, VacancyNotVacant:
			f.Vacancy = Vacancy(raw)
		default:
			return Filter{}, fmt.Errorf("vacancy must be one of %q, %q, %q", VacancyAll, VacancyVacant, VacancyNotVacant)
		}
	}

	if vals, ok := q["types"]; ok {
		f.Types = splitTypes(vals)
	}

	return f, nil
}

// splitTypes flattens repeated and comma-separated type parameters.
func splitTypes(vals []string) []string {
	var types []string
	for _, val := range vals {
		for _, t := range strings.Split(val, ",") {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			types = append(types, t)
		}
	}
	return types
}

// ObservedTypes returns the distinct building types in sorted order.
func ObservedTypes(records []Building) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, b := range records {
		if _, ok := seen[b.BuildingType]; ok {
			continue
		}
		seen[b.BuildingType] = struct{}{}
		types = append(types, b.BuildingType)
	}
	sort.Strings(types)
	return types
}

// UnitBounds returns the minimum and maximum unit counts over the records,
// or (0, 0) for an empty set.
func UnitBounds(records []Building) (float64, float64) {
	if len(records) == 0 {
		return 0, 0
	}
	minUnits, maxUnits := records[0].UnitCount, records[0].UnitCount
	for _, b := range records[1:] {
		if b.UnitCount < minUnits {
			minUnits = b.UnitCount
		}
		if b.UnitCount > maxUnits {
			maxUnits = b.UnitCount
		}
	}
	return minUnits, maxUnits
}
