// README: Trip coordinator: lifecycle commands, simulated driver matching and
// live-location interpolation over an injected scheduler.
package trip

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"careride/internal/config"
	"careride/internal/modules/alert"
	"careride/internal/sched"
	"careride/internal/types"
)

var ErrInvalidState = errors.New("invalid state transition")

// Notifier receives the alert batches lifecycle events generate.
type Notifier interface {
	Publish(drafts ...alert.Draft) []alert.Alert
}

// Service owns the trip state. Commands and timer callbacks share one mutex:
// a command's state change and the alerts it publishes happen in the same
// critical section, and a stale tick firing after cancel or completion finds
// the status changed and backs off.
type Service struct {
	mu     sync.Mutex
	cfg    config.TripConfig
	clock  sched.Scheduler
	alerts Notifier

	trip       Trip
	fraction   float64
	matchTimer sched.Handle
	moveTimer  sched.Handle
}

func NewService(cfg config.TripConfig, clock sched.Scheduler, alerts Notifier, pickup, dropoff types.Point) *Service {
	return &Service{
		cfg:    cfg,
		clock:  clock,
		alerts: alerts,
		trip: Trip{
			ID:      types.ID("t_" + uuid.NewString()),
			Status:  StatusIdle,
			Pickup:  pickup,
			Dropoff: dropoff,
			Current: pickup,
		},
	}
}

// Current returns a snapshot of the trip.
func (s *Service) Current() Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip
}

// CurrentLocation returns the live position; SOS alerts are stamped with it.
func (s *Service) CurrentLocation() types.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip.Current
}

// StartMatching records the chosen route and vehicle and begins the simulated
// driver search. Accepted only while idle or completed.
func (s *Service) StartMatching(routeID, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !CanTransition(s.trip.Status, StatusSearching) {
		return ErrInvalidState
	}
	s.trip.Status = StatusSearching
	s.trip.RouteID = routeID
	s.trip.VehicleID = vehicleID
	// a rebooking after completion must not carry the previous run's times
	s.trip.StartedAt = nil
	s.trip.CompletedAt = nil
	if s.matchTimer != nil {
		s.matchTimer.Stop()
	}
	s.matchTimer = s.clock.Once(s.cfg.MatchDelay, s.assignDriver)

	loc := s.trip.Pickup
	s.alerts.Publish(alert.Draft{
		Kind:     alert.KindTrip,
		Title:    "Booking requested",
		Message:  "Searching for an accessible driver…",
		Location: &loc,
	})
	return nil
}

// assignDriver is the one-shot matching callback.
func (s *Service) assignDriver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trip.Status != StatusSearching {
		// cancelled while the search was pending
		return
	}
	s.trip.Status = StatusDriverAssigned
	s.matchTimer = nil

	loc := s.trip.Pickup
	s.alerts.Publish(alert.Draft{
		Kind:     alert.KindTrip,
		Title:    "Driver assigned",
		Message:  "Driver is on the way. Ramp + gentle start/stop enabled.",
		Location: &loc,
	})
}

// StartTrip moves an assigned trip into progress and begins the periodic
// location interpolation toward the dropoff.
func (s *Service) StartTrip() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !CanTransition(s.trip.Status, StatusInProgress) {
		return ErrInvalidState
	}
	now := time.Now()
	s.trip.Status = StatusInProgress
	s.trip.StartedAt = &now
	s.fraction = 0
	if s.moveTimer != nil {
		s.moveTimer.Stop()
	}
	s.moveTimer = s.clock.Every(s.cfg.TickInterval, s.advance)

	loc := s.trip.Pickup
	s.alerts.Publish(alert.Draft{
		Kind:     alert.KindTrip,
		Title:    "Trip started",
		Message:  "Live location sharing is active for guardian.",
		Location: &loc,
	})
	return nil
}

// advance is the periodic interpolation tick.
func (s *Service) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trip.Status != StatusInProgress {
		// stale tick after cancel or completion
		return
	}
	s.fraction = math.Min(1, s.fraction+s.cfg.StepFraction)
	s.trip.Current = lerpPoint(s.trip.Pickup, s.trip.Dropoff, s.fraction)
	if s.fraction >= 1 {
		s.completeLocked()
	}
}

// CompleteTrip marks an in-progress trip complete. The interpolation ticker
// normally drives this when the path fraction reaches 1.
func (s *Service) CompleteTrip() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !CanTransition(s.trip.Status, StatusCompleted) {
		return ErrInvalidState
	}
	s.completeLocked()
	return nil
}

func (s *Service) completeLocked() {
	if s.moveTimer != nil {
		s.moveTimer.Stop()
		s.moveTimer = nil
	}
	now := time.Now()
	s.trip.Status = StatusCompleted
	s.trip.CompletedAt = &now

	loc := s.trip.Dropoff
	s.alerts.Publish(alert.Draft{
		Kind:     alert.KindTrip,
		Title:    "Trip completed",
		Message:  "Reached destination safely.",
		Location: &loc,
	})
}

// CancelTrip stops any pending simulated work and resets the trip to idle,
// putting the live position back at the pickup. The alert log is untouched.
// Cancelling an idle trip is a no-op.
func (s *Service) CancelTrip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
	s.trip.Status = StatusIdle
	s.trip.Current = s.trip.Pickup
	s.fraction = 0
}

func (s *Service) stopTimersLocked() {
	if s.matchTimer != nil {
		s.matchTimer.Stop()
		s.matchTimer = nil
	}
	if s.moveTimer != nil {
		s.moveTimer.Stop()
		s.moveTimer = nil
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpPoint(from, to types.Point, t float64) types.Point {
	return types.Point{
		Lat: lerp(from.Lat, to.Lat, t),
		Lng: lerp(from.Lng, to.Lng, t),
	}
}
