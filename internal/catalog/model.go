// README: Static reference records: routes, vehicles, hazards, hospitals and
// the demo rider/guardian pair. Read-only once loaded.
package catalog

import "careride/internal/types"

type Route struct {
	ID         string   `yaml:"id" validate:"required"`
	Title      string   `yaml:"title" validate:"required"`
	ETAMinutes int      `yaml:"eta_minutes" validate:"gt=0"`
	DistanceKm float64  `yaml:"distance_km" validate:"gt=0"`
	Notes      []string `yaml:"notes"`
}

type Vehicle struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Tags     []string `yaml:"tags"`
	BaseFare int64    `yaml:"base_fare" validate:"gte=0"`
	// AccessibilitySurcharge is added on top of the base fare for vehicles
	// that are not accessible by construction.
	AccessibilitySurcharge int64 `yaml:"accessibility_surcharge" validate:"gte=0"`
}

type Hazard struct {
	ID       string      `yaml:"id" validate:"required"`
	Title    string      `yaml:"title" validate:"required"`
	Severity string      `yaml:"severity" validate:"oneof=low medium high"`
	Location types.Point `yaml:"location"`
}

type Hospital struct {
	ID       string      `yaml:"id" validate:"required"`
	Name     string      `yaml:"name" validate:"required"`
	Phone    string      `yaml:"phone" validate:"required"`
	Address  string      `yaml:"address" validate:"required"`
	Location types.Point `yaml:"location"`
}

type Rider struct {
	ID                string `yaml:"id" validate:"required"`
	Name              string `yaml:"name" validate:"required"`
	DisabilityProfile string `yaml:"disability_profile" validate:"omitempty,oneof=wheelchair visual elderly motor general"`
}

type Guardian struct {
	ID            string `yaml:"id" validate:"required"`
	Name          string `yaml:"name" validate:"required"`
	LinkedRiderID string `yaml:"linked_rider_id" validate:"required"`
}

// Catalog is the full reference data set for one demo session. Hospitals must
// be non-empty: the SOS trail depends on a nearest-hospital lookup.
type Catalog struct {
	Rider     Rider       `yaml:"rider"`
	Guardian  Guardian    `yaml:"guardian"`
	Pickup    types.Point `yaml:"pickup"`
	Dropoff   types.Point `yaml:"dropoff"`
	Routes    []Route     `yaml:"routes" validate:"min=1,dive"`
	Vehicles  []Vehicle   `yaml:"vehicles" validate:"min=1,dive"`
	Hazards   []Hazard    `yaml:"hazards" validate:"dive"`
	Hospitals []Hospital  `yaml:"hospitals" validate:"min=1,dive"`
}

func (c *Catalog) RouteByID(id string) (Route, bool) {
	for _, r := range c.Routes {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}

func (c *Catalog) VehicleByID(id string) (Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
