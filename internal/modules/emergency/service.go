// README: SOS triggers; each raises a primary sos alert plus guardian
// notifications stamped with the trip's live position.
package emergency

import (
	"errors"
	"fmt"

	"careride/internal/catalog"
	"careride/internal/modules/alert"
	"careride/internal/types"
)

var ErrEmptyCatalog = errors.New("hospital catalog is empty")

const defaultPoliceNumber = "112"

// LocationSource exposes the live position SOS alerts are stamped with.
type LocationSource interface {
	CurrentLocation() types.Point
}

type Service struct {
	alerts       *alert.Log
	position     LocationSource
	hospitals    []catalog.Hospital
	policeNumber string
}

// NewService fails fast on an empty hospital catalog: a hospital SOS without
// a nearest hospital would corrupt the alert trail.
func NewService(alerts *alert.Log, position LocationSource, hospitals []catalog.Hospital, policeNumber string) (*Service, error) {
	if len(hospitals) == 0 {
		return nil, ErrEmptyCatalog
	}
	if policeNumber == "" {
		policeNumber = defaultPoliceNumber
	}
	return &Service{
		alerts:       alerts,
		position:     position,
		hospitals:    hospitals,
		policeNumber: policeNumber,
	}, nil
}

// TriggerHospitalSOS looks up the nearest hospital to the live position and
// raises a hospital SOS. A non-empty message overrides the generated default.
// The primary sos alert goes in as its own batch, then the guardian
// notification and the emergency-destination alert go in together as a second
// batch, so the log gains three entries per call. Returns the primary alert.
func (s *Service) TriggerHospitalSOS(message string) alert.Alert {
	pos := s.position.CurrentLocation()
	nearest := nearestHospital(pos, s.hospitals)
	if message == "" {
		message = fmt.Sprintf("Nearest hospital: %s (%s). Sharing details with guardian.", nearest.Name, nearest.Phone)
	}

	loc := pos
	hosp := nearest
	primary := s.alerts.Publish(alert.Draft{
		Kind:     alert.KindSOS,
		Title:    "Hospital SOS Triggered",
		Message:  message,
		Location: &loc,
		Hospital: &hosp,
	})[0]

	dest := nearest.Location
	s.alerts.Publish(
		alert.Draft{
			Kind:     alert.KindTrip,
			Title:    "Guardian notified",
			Message:  fmt.Sprintf("Rider triggered Hospital SOS. Hospital: %s • %s", nearest.Name, nearest.Phone),
			Location: &loc,
			Hospital: &hosp,
		},
		alert.Draft{
			Kind:     alert.KindTrip,
			Title:    "Emergency destination set",
			Message:  fmt.Sprintf("Proceed to %s (%s).", nearest.Name, nearest.Address),
			Location: &dest,
			Hospital: &hosp,
		},
	)
	return primary
}

// TriggerPoliceSOS raises a police SOS with the demo emergency number; no
// hospital lookup. The primary and its guardian notification go in as one
// batch, so no reader ever sees the primary alone. The log gains two entries.
// Returns the primary alert.
func (s *Service) TriggerPoliceSOS(message string) alert.Alert {
	pos := s.position.CurrentLocation()
	if message == "" {
		message = fmt.Sprintf("Police emergency notified (demo). Call: %s", s.policeNumber)
	}

	loc := pos
	created := s.alerts.Publish(
		alert.Draft{
			Kind:     alert.KindTrip,
			Title:    "Guardian notified",
			Message:  fmt.Sprintf("Rider triggered Police SOS. Emergency number: %s", s.policeNumber),
			Location: &loc,
		},
		alert.Draft{
			Kind:     alert.KindSOS,
			Title:    "Police SOS Triggered",
			Message:  message,
			Location: &loc,
		},
	)
	return created[1]
}

// TriggerGuardianSOS asks the linked guardian for direct assistance. Like the
// police variant, the pair goes in as one batch. The log gains two entries.
// Returns the primary alert.
func (s *Service) TriggerGuardianSOS(message string) alert.Alert {
	pos := s.position.CurrentLocation()
	if message == "" {
		message = "Guardian assistance requested (demo). Live location shared."
	}

	loc := pos
	created := s.alerts.Publish(
		alert.Draft{
			Kind:     alert.KindTrip,
			Title:    "Guardian notified",
			Message:  "Rider requested guardian assistance. Live location shared.",
			Location: &loc,
		},
		alert.Draft{
			Kind:     alert.KindSOS,
			Title:    "Guardian SOS Triggered",
			Message:  message,
			Location: &loc,
		},
	)
	return created[1]
}
