// README: Shared value types used across modules.
package types

type ID string

// Point is a WGS84 latitude/longitude pair in decimal degrees. Values pass
// through unvalidated except where the catalog loader bounds them.
type Point struct {
	Lat float64 `yaml:"lat" json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `yaml:"lng" json:"lng" validate:"gte=-180,lte=180"`
}

type Money struct {
	Amount   int64
	Currency string
}
