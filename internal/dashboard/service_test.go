package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"inventar.org/internal/inventory"
	"inventar.org/internal/inventory/seed"
)

func newTestService() *Service {
	return New(inventory.NewStore(inventory.WithInitialState(seed.State())))
}

func TestAccessoryCheckoutAndCheckinBounds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Nothing is out yet, so a checkin must refuse.
	if _, err := svc.CheckinAccessory(ctx, "acc1"); !errors.Is(err, ErrNoneCheckedOut) {
		t.Fatalf("expected ErrNoneCheckedOut, got %v", err)
	}

	state, err := svc.CheckoutAccessory(ctx, "acc1")
	if err != nil {
		t.Fatal(err)
	}
	if got := state.Accessories["acc1"].CheckedOutQty; got != 1 {
		t.Fatalf("checkout did not increment: %d", got)
	}

	state, err = svc.CheckinAccessory(ctx, "acc1")
	if err != nil {
		t.Fatal(err)
	}
	if got := state.Accessories["acc1"].CheckedOutQty; got != 0 {
		t.Fatalf("checkin did not decrement: %d", got)
	}

	if _, err := svc.CheckoutAccessory(ctx, "no-such-accessory"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccessoryCheckoutRefusesWhenDrained(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	total := svc.Snapshot().Accessories["acc2"].TotalQty
	for i := 0; i < total; i++ {
		if _, err := svc.CheckoutAccessory(ctx, "acc2"); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}
	if _, err := svc.CheckoutAccessory(ctx, "acc2"); !errors.Is(err, ErrNoneAvailable) {
		t.Fatalf("expected ErrNoneAvailable, got %v", err)
	}
}

func TestComponentStockBounds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Fully stocked, so checkin must refuse before anything was consumed.
	if _, err := svc.CheckinComponent(ctx, "comp1"); !errors.Is(err, ErrNoneCheckedOut) {
		t.Fatalf("expected ErrNoneCheckedOut, got %v", err)
	}

	state, err := svc.CheckoutComponent(ctx, "comp1")
	if err != nil {
		t.Fatal(err)
	}
	if got := state.Components["comp1"].RemainingQty; got != 9 {
		t.Fatalf("checkout did not consume stock: %d", got)
	}

	state, err = svc.CheckinComponent(ctx, "comp1")
	if err != nil {
		t.Fatal(err)
	}
	if got := state.Components["comp1"].RemainingQty; got != 10 {
		t.Fatalf("checkin did not restore stock: %d", got)
	}

	remaining := state.Components["comp1"].RemainingQty
	for i := 0; i < remaining; i++ {
		if _, err := svc.CheckoutComponent(ctx, "comp1"); err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}
	if _, err := svc.CheckoutComponent(ctx, "comp1"); !errors.Is(err, ErrNoneAvailable) {
		t.Fatalf("expected ErrNoneAvailable on empty stock, got %v", err)
	}
}

func TestAddLicenseMaterializesNumberedSeats(t *testing.T) {
	svc := New(inventory.NewStore())
	state := svc.AddLicense(context.Background(), inventory.MasterLicense{Name: "Slack", TotalSeats: 3})

	if len(state.LicenseSeats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(state.LicenseSeats))
	}
	numbers := make(map[string]bool)
	for _, seat := range state.LicenseSeats {
		numbers[seat.SeatNumber] = true
		if seat.Status != inventory.SeatAvailable {
			t.Fatalf("seat not available by default: %+v", seat)
		}
	}
	for _, want := range []string{"Seat 001", "Seat 002", "Seat 003"} {
		if !numbers[want] {
			t.Fatalf("missing seat number %s in %v", want, numbers)
		}
	}
}

func TestAssignAndUnassignSeat(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	state, err := svc.AssignSeat(ctx, "s3", inventory.AssignedToPerson, "Mike Peters")
	if err != nil {
		t.Fatal(err)
	}
	seat := state.LicenseSeats["s3"]
	if seat.Status != inventory.SeatAssigned || seat.AssignedToID != "Mike Peters" {
		t.Fatalf("seat not assigned: %+v", seat)
	}

	state, err = svc.UnassignSeat(ctx, "s3")
	if err != nil {
		t.Fatal(err)
	}
	seat = state.LicenseSeats["s3"]
	if seat.Status != inventory.SeatAvailable || seat.AssignedToID != "" {
		t.Fatalf("seat not released: %+v", seat)
	}
	if len(seat.History) != 2 {
		t.Fatalf("expected assign + unassign events, got %d", len(seat.History))
	}

	if _, err := svc.AssignSeat(ctx, "ghost", inventory.AssignedToPerson, "Mike"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats(seed.State())

	if st.TotalAssets != 3 || st.ActiveAssets != 2 || st.MaintenanceAssets != 1 {
		t.Fatalf("unexpected asset counts: %+v", st)
	}
	wantValue := decimal.NewFromInt(2100 + 1200 + 850)
	if !st.TotalValue.Equal(wantValue) {
		t.Fatalf("unexpected total value: %s", st.TotalValue)
	}
	if st.TotalLicenses != 2 || st.ExpiringLicenses != 1 {
		t.Fatalf("unexpected license counts: %+v", st)
	}
	if st.TotalSeats != 5 || st.AssignedSeats != 2 {
		t.Fatalf("unexpected seat counts: %+v", st)
	}
	if st.PendingBatches != 1 {
		t.Fatalf("unexpected pending batches: %d", st.PendingBatches)
	}
}

func TestApplyReportsNoopForMissingIDs(t *testing.T) {
	svc := newTestService()
	before := svc.Snapshot()
	after := svc.Apply(context.Background(), inventory.DeleteAsset("ghost"))
	if len(after.Assets) != len(before.Assets) {
		t.Fatal("no-op command changed the tree")
	}
}
