package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"inventar.org/internal/dashboard"
	"inventar.org/internal/inventory"
	"inventar.org/internal/inventory/seed"
	"inventar.org/internal/obs"
)

// Drives the seeded store through the core dashboard flows and exits
// non-zero on the first violated invariant.
func main() {
	obs.Init()

	store := inventory.NewStore(inventory.WithInitialState(seed.State()))
	svc := dashboard.New(store)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Create an asset that claims the free Adobe seat.
	state := svc.AddAsset(ctx, inventory.Asset{
		Name:             "ThinkPad X1 Carbon",
		AssetTag:         "AST-100",
		SerialNumber:     "TP-X1-100",
		Type:             "Laptop",
		Status:           inventory.AssetActive,
		Location:         "HQ - Floor 2",
		Assignee:         "Mike Peters",
		Department:       "Engineering",
		AssignedLicenses: []string{"s3"},
	})
	var assetID string
	for id, a := range state.Assets {
		if a.AssetTag == "AST-100" {
			assetID = id
		}
	}
	if assetID == "" {
		log.Fatal("created asset not found in snapshot")
	}
	seat := state.LicenseSeats["s3"]
	if seat.Status != inventory.SeatAssigned || seat.AssignedToID != assetID {
		log.Fatalf("seat s3 not claimed by new asset: status=%s assignee=%s", seat.Status, seat.AssignedToID)
	}
	asset := state.Assets[assetID]
	if len(asset.History) != 1 || asset.History[0].Type != inventory.EventCreation {
		log.Fatalf("expected exactly one creation event, got %d entries", len(asset.History))
	}

	// Reassign the asset and drop the seat; both derived effects must land in
	// one transition.
	asset.Assignee = "Sarah Johnson"
	asset.AssignedLicenses = []string{}
	state = svc.UpdateAsset(ctx, asset)
	updated := state.Assets[assetID]
	if got := len(updated.History); got != 2 {
		log.Fatalf("expected creation + reassignment history, got %d entries", got)
	}
	last := updated.History[len(updated.History)-1]
	if last.Type != inventory.EventAssignment || last.ChangedFrom != "Mike Peters" || last.ChangedTo != "Sarah Johnson" {
		log.Fatalf("unexpected reassignment event: %+v", last)
	}
	seat = state.LicenseSeats["s3"]
	if seat.Status != inventory.SeatAvailable || seat.AssignedToType != inventory.AssignedToNone {
		log.Fatalf("seat s3 not released on update: %+v", seat)
	}

	// Cascade delete: the Office license takes its two seats with it.
	state = svc.DeleteLicense(ctx, "l2")
	if _, ok := state.MasterLicenses["l2"]; ok {
		log.Fatal("license l2 still present after delete")
	}
	for id, s := range state.LicenseSeats {
		if s.MasterLicenseID == "l2" {
			log.Fatalf("seat %s survived its master's deletion", id)
		}
	}

	// Commands naming missing ids are no-ops.
	before := svc.Snapshot()
	state = svc.DeleteAsset(ctx, "no-such-asset")
	if len(state.Assets) != len(before.Assets) {
		log.Fatal("delete of a missing asset changed the tree")
	}

	// Stock guards: drain a component and make sure both bounds hold.
	comp := state.Components["comp1"]
	for i := 0; i < comp.RemainingQty; i++ {
		if state, _ = svc.CheckoutComponent(ctx, "comp1"); state.Components["comp1"].RemainingQty < 0 {
			log.Fatal("component stock went negative")
		}
	}
	if _, err := svc.CheckoutComponent(ctx, "comp1"); !errors.Is(err, dashboard.ErrNoneAvailable) {
		log.Fatalf("expected ErrNoneAvailable on empty stock, got %v", err)
	}
	if _, err := svc.CheckinAccessory(ctx, "acc1"); !errors.Is(err, dashboard.ErrNoneCheckedOut) {
		log.Fatalf("expected ErrNoneCheckedOut with nothing outstanding, got %v", err)
	}

	stats := dashboard.ComputeStats(svc.Snapshot())
	if stats.TotalAssets != 4 {
		log.Fatalf("expected 4 assets in stats, got %d", stats.TotalAssets)
	}
	if stats.TotalLicenses != 1 {
		log.Fatalf("expected 1 license after cascade delete, got %d", stats.TotalLicenses)
	}

	fmt.Printf("✅ inventory smoke test passed: asset=%s\n", assetID)
}
