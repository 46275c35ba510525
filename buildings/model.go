// Package buildings holds the building record model, the dataset loader,
// and the filter and aggregation logic behind the dashboard endpoints.
package buildings

// Building is one record from the presampled_points table. Lat and Lon are
// derived from Y and X at load time for map consumers.
type Building struct {
	UnitCount    float64 `json:"unit_count"`
	Vacant       bool    `json:"vacant"`
	Zipcode      string  `json:"zipcode"`
	BuildingType string  `json:"building_type"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}
