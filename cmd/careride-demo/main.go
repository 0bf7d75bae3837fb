// README: Entry point; loads config and catalog, wires the coordinator, and
// plays a scripted rider + guardian session against real timers.
package main

import (
	"fmt"
	"log"
	"time"

	"careride/internal/catalog"
	"careride/internal/config"
	"careride/internal/modules/alert"
	"careride/internal/modules/emergency"
	"careride/internal/modules/prefs"
	"careride/internal/modules/pricing"
	"careride/internal/modules/trip"
	"careride/internal/sched"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.LoadDemo()
	}
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	alerts := alert.NewLog(cfg.Alert.Cap)
	prefsSvc := prefs.NewService(func(p prefs.Prefs) {
		log.Printf("prefs changed: high_contrast=%v large_text=%v", p.HighContrast, p.LargeText)
	})
	pricingSvc := pricing.NewService(cat.Vehicles)
	tripSvc := trip.NewService(cfg.Trip, sched.NewTimers(), alerts, cat.Pickup, cat.Dropoff)
	sosSvc, err := emergency.NewService(alerts, tripSvc, cat.Hospitals, cfg.Emergency.PoliceNumber)
	if err != nil {
		log.Fatalf("emergency: %v", err)
	}

	fmt.Printf("Rider: %s (%s) • Guardian: %s\n", cat.Rider.Name, cat.Rider.DisabilityProfile, cat.Guardian.Name)
	for _, h := range cat.Hazards {
		fmt.Printf("Hazard [%s] %s\n", h.Severity, h.Title)
	}

	prefsSvc.SetHighContrast(true)

	route := cat.Routes[0]
	vehicle := cat.Vehicles[0]
	fare, err := pricingSvc.EstimateByID(vehicle.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Selected %s via %s, estimated fare %d %s\n", vehicle.Name, route.Title, fare.Amount, fare.Currency)

	if err := tripSvc.StartMatching(route.ID, vehicle.ID); err != nil {
		log.Fatal(err)
	}
	waitFor(tripSvc, trip.StatusDriverAssigned, 5*time.Second)

	if err := tripSvc.StartTrip(); err != nil {
		log.Fatal(err)
	}

	// Mid-trip emergency: the rider asks the guardian for help, the guardian
	// resolves it from their view.
	time.Sleep(3 * cfg.Trip.TickInterval)
	sos := sosSvc.TriggerGuardianSOS("")
	if active, ok := alerts.ActiveSOS(); ok {
		fmt.Printf("Guardian sees active SOS: %s\n", active.Title)
	}
	alerts.Resolve(sos.ID)

	waitFor(tripSvc, trip.StatusCompleted, 2*time.Minute)

	fmt.Println("Alert feed (newest first):")
	for _, a := range alerts.List() {
		mark := " "
		if a.Resolved {
			mark = "✓"
		}
		fmt.Printf("  %s [%s] %s — %s\n", mark, a.Kind, a.Title, a.Message)
	}
	fmt.Printf("Final status: %s\n", tripSvc.Current().Status)
}

func waitFor(s *trip.Service, want trip.Status, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		cur := s.Current()
		if cur.Status == want {
			return
		}
		if cur.Status == trip.StatusInProgress {
			log.Printf("live location: %.4f, %.4f", cur.Current.Lat, cur.Current.Lng)
		}
		time.Sleep(200 * time.Millisecond)
	}
	log.Fatalf("timed out waiting for status %s", want)
}
