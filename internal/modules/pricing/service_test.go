// README: Fare estimation tests.
package pricing

import (
	"testing"

	"careride/internal/catalog"
)

func testVehicles() []catalog.Vehicle {
	return []catalog.Vehicle{
		{ID: "v_wc_1", Name: "Wheelchair Van", BaseFare: 220, AccessibilitySurcharge: 0},
		{ID: "v_low_1", Name: "Low-Floor Sedan", BaseFare: 160, AccessibilitySurcharge: 20},
		{ID: "v_std_1", Name: "Standard Hatchback", BaseFare: 120, AccessibilitySurcharge: 35},
	}
}

func TestEstimateByID(t *testing.T) {
	svc := NewService(testVehicles())

	cases := []struct {
		vehicleID string
		want      int64
	}{
		{"v_wc_1", 220},
		{"v_low_1", 180},
		{"v_std_1", 155},
	}
	for _, tc := range cases {
		got, err := svc.EstimateByID(tc.vehicleID)
		if err != nil {
			t.Fatalf("estimate %s: %v", tc.vehicleID, err)
		}
		if got.Amount != tc.want {
			t.Errorf("fare for %s = %d, want %d", tc.vehicleID, got.Amount, tc.want)
		}
		if got.Currency != "INR" {
			t.Errorf("currency for %s = %s, want INR", tc.vehicleID, got.Currency)
		}
	}
}

func TestEstimateUnknownVehicle(t *testing.T) {
	svc := NewService(testVehicles())
	if _, err := svc.EstimateByID("v_nope"); err != ErrUnknownVehicle {
		t.Fatalf("expected ErrUnknownVehicle, got %v", err)
	}
}
