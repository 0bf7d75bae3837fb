// README: Catalog loading and validation tests.
package catalog

import (
	"strings"
	"testing"
)

func TestLoadDemoCatalog(t *testing.T) {
	cat, err := LoadDemo()
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}

	if len(cat.Routes) != 3 || len(cat.Vehicles) != 3 || len(cat.Hazards) != 3 || len(cat.Hospitals) != 3 {
		t.Fatalf("catalog sizes = %d/%d/%d/%d, want 3/3/3/3",
			len(cat.Routes), len(cat.Vehicles), len(cat.Hazards), len(cat.Hospitals))
	}
	if cat.Pickup.Lat != 19.076 || cat.Pickup.Lng != 72.8777 {
		t.Fatalf("pickup = %+v", cat.Pickup)
	}
	if cat.Guardian.LinkedRiderID != cat.Rider.ID {
		t.Fatalf("guardian linked to %s, rider is %s", cat.Guardian.LinkedRiderID, cat.Rider.ID)
	}

	v, ok := cat.VehicleByID("v_std_1")
	if !ok || v.Name != "Standard Hatchback" {
		t.Fatalf("VehicleByID(v_std_1) = %+v, %v", v, ok)
	}
	if _, ok := cat.RouteByID("nope"); ok {
		t.Fatal("unknown route id resolved")
	}
}

func TestParseRejectsMissingHospitals(t *testing.T) {
	data := `
rider: {id: u_1, name: R}
guardian: {id: g_1, name: G, linked_rider_id: u_1}
routes:
  - {id: fast, title: Fast, eta_minutes: 10, distance_km: 5}
vehicles:
  - {id: v_1, name: Van}
hospitals: []
`
	if _, err := parse([]byte(data)); err == nil {
		t.Fatal("empty hospital list passed validation")
	}
}

func TestParseRejectsOutOfRangeCoordinates(t *testing.T) {
	data := `
rider: {id: u_1, name: R}
guardian: {id: g_1, name: G, linked_rider_id: u_1}
routes:
  - {id: fast, title: Fast, eta_minutes: 10, distance_km: 5}
vehicles:
  - {id: v_1, name: Van}
hospitals:
  - id: h_1
    name: H
    phone: "1"
    address: A
    location: {lat: 123.0, lng: 72.0}
`
	if _, err := parse([]byte(data)); err == nil {
		t.Fatal("latitude 123 passed validation")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := parse([]byte("routes: ["))
	if err == nil || strings.Contains(err.Error(), "validation") {
		t.Fatalf("expected a yaml error, got %v", err)
	}
}
