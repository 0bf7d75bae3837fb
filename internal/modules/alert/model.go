// README: Alert records surfaced to the rider and guardian views.
package alert

import (
	"time"

	"careride/internal/catalog"
	"careride/internal/types"
)

type Kind string

const (
	KindSOS    Kind = "sos"
	KindHazard Kind = "hazard"
	KindTrip   Kind = "trip"
)

// Alert is immutable once published, except for the Resolved flag.
type Alert struct {
	ID        types.ID
	Kind      Kind
	Title     string
	Message   string
	CreatedAt time.Time
	Location  *types.Point
	Resolved  bool
	// Hospital is set on alerts raised by a hospital SOS.
	Hospital *catalog.Hospital
}

// Draft is an Alert before the log assigns its identity and timestamp.
type Draft struct {
	Kind     Kind
	Title    string
	Message  string
	Location *types.Point
	Hospital *catalog.Hospital
}
