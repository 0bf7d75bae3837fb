// README: Fare estimation for the accessible vehicle options.
package pricing

import (
	"errors"

	"careride/internal/catalog"
	"careride/internal/types"
)

const currency = "INR"

var ErrUnknownVehicle = errors.New("unknown vehicle")

type Service struct {
	vehicles []catalog.Vehicle
}

func NewService(vehicles []catalog.Vehicle) *Service {
	return &Service{vehicles: vehicles}
}

// Estimate returns the demo fare: base fare plus the accessibility surcharge.
func (s *Service) Estimate(v catalog.Vehicle) types.Money {
	return types.Money{Amount: v.BaseFare + v.AccessibilitySurcharge, Currency: currency}
}

// EstimateByID resolves the vehicle from the catalog first.
func (s *Service) EstimateByID(vehicleID string) (types.Money, error) {
	for _, v := range s.vehicles {
		if v.ID == vehicleID {
			return s.Estimate(v), nil
		}
	}
	return types.Money{}, ErrUnknownVehicle
}
