// README: Trip aggregate and lifecycle status definitions.
package trip

import (
	"time"

	"careride/internal/types"
)

type Status string

const (
	StatusIdle           Status = "idle"
	StatusSearching      Status = "searching"
	StatusDriverAssigned Status = "driver_assigned"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
)

// Trip is the single modeled ride. It is reset in place on cancel, never
// recreated.
type Trip struct {
	ID      types.ID
	Status  Status
	Pickup  types.Point
	Dropoff types.Point
	// Current stays on the pickup→dropoff segment while the trip runs.
	Current     types.Point
	RouteID     string
	VehicleID   string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// AllowedTransitions represents the trip lifecycle flow as code. Cancel is
// not listed: it forces any status back to idle.
var AllowedTransitions = map[Status][]Status{
	StatusIdle:           {StatusSearching},
	StatusSearching:      {StatusDriverAssigned},
	StatusDriverAssigned: {StatusInProgress},
	StatusInProgress:     {StatusCompleted},
	StatusCompleted:      {StatusSearching},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
