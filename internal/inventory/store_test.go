package inventory

import (
	"context"
	"testing"
	"time"

	"inventar.org/internal/ids"
)

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return testTime }),
		WithIDFunc(ids.Sequential("id")),
		WithEventIDFunc(ids.Sequential("ev")),
	}
	return NewStore(append(base, opts...)...)
}

func seatFixture(id, masterID string) LicenseSeat {
	return LicenseSeat{
		ID:              id,
		MasterLicenseID: masterID,
		SeatNumber:      "Seat " + id,
		Status:          SeatAvailable,
		AssignedToType:  AssignedToNone,
	}
}

func licenseState() State {
	st := NewState()
	st.MasterLicenses["l1"] = MasterLicense{ID: "l1", Name: "Adobe Creative Cloud", TotalSeats: 3, Status: LicenseActive}
	st.LicenseSeats["s1"] = seatFixture("s1", "l1")
	st.LicenseSeats["s2"] = seatFixture("s2", "l1")
	st.LicenseSeats["s3"] = seatFixture("s3", "l1")
	return st
}

func TestAddAssetAllocatesIDAndCreationEvent(t *testing.T) {
	s := newTestStore()
	state := s.Dispatch(context.Background(), AddAsset(Asset{Name: "MacBook", Assignee: "Sarah"}))

	a, ok := state.Assets["id-1"]
	if !ok {
		t.Fatalf("expected allocated id id-1, assets: %v", state.Assets)
	}
	if len(a.History) != 1 {
		t.Fatalf("expected one creation event, got %d", len(a.History))
	}
	evt := a.History[0]
	if evt.Type != EventCreation || evt.EntityID != "id-1" || evt.ChangedTo != "Sarah" {
		t.Fatalf("unexpected creation event: %+v", evt)
	}
	if !evt.Date.Equal(testTime) {
		t.Fatalf("event not stamped with injected clock: %v", evt.Date)
	}
}

func TestAddAssetClaimsListedSeats(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()

	state := s.Dispatch(ctx, AddAsset(Asset{Name: "MacBook", AssignedLicenses: []string{"s1", "missing-seat"}}))

	seat := state.LicenseSeats["s1"]
	if seat.Status != SeatAssigned || seat.AssignedToType != AssignedToAsset || seat.AssignedToID != "id-1" {
		t.Fatalf("seat s1 not claimed: %+v", seat)
	}
	if len(seat.History) != 1 {
		t.Fatalf("expected one seat event, got %d", len(seat.History))
	}
	if got := seat.History[0].Description; got != "Assigned to new asset: MacBook" {
		t.Fatalf("unexpected seat event description: %q", got)
	}
	// The missing seat id is ignored, not an error, and stays on the asset.
	if got := state.Assets["id-1"].AssignedLicenses; len(got) != 2 {
		t.Fatalf("asset seat list altered: %v", got)
	}
}

func TestAddAssetClaimsEachSeatOnce(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))

	state := s.Dispatch(context.Background(), AddAsset(Asset{
		Name:             "MacBook",
		AssignedLicenses: []string{"s1", "s1", "s2", "s1"},
	}))

	for _, id := range []string{"s1", "s2"} {
		seat := state.LicenseSeats[id]
		if seat.Status != SeatAssigned || seat.AssignedToID != "id-1" {
			t.Fatalf("seat %s not claimed: %+v", id, seat)
		}
		if got := len(seat.History); got != 1 {
			t.Fatalf("seat %s gained %d assignment events, want 1", id, got)
		}
	}
}

func TestUpdateAssetAssigneeAndStatusEvents(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	state := s.Dispatch(ctx, AddAsset(Asset{Name: "MacBook", Assignee: "Sarah", Status: AssetActive}))

	a := state.Assets["id-1"]
	a.Assignee = "Mike"
	a.Status = AssetMaintenance
	state = s.Dispatch(ctx, UpdateAsset(a))

	h := state.Assets["id-1"].History
	if len(h) != 3 {
		t.Fatalf("expected creation + assignment + status, got %d", len(h))
	}
	if h[1].Type != EventAssignment || h[1].ChangedFrom != "Sarah" || h[1].ChangedTo != "Mike" {
		t.Fatalf("unexpected assignment event: %+v", h[1])
	}
	if h[2].Type != EventStatus || h[2].Description != "Status changed to maintenance" {
		t.Fatalf("unexpected status event: %+v", h[2])
	}

	// Re-dispatching the same payload derives nothing new.
	state = s.Dispatch(ctx, UpdateAsset(state.Assets["id-1"]))
	if got := len(state.Assets["id-1"].History); got != 3 {
		t.Fatalf("idempotent update appended events: %d", got)
	}
}

func TestUpdateAssetHistoryIsAppendOnly(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	state := s.Dispatch(ctx, AddAsset(Asset{Name: "MacBook", Assignee: "Sarah"}))

	// A payload that claims an empty history cannot erase the stored log.
	forged := state.Assets["id-1"]
	forged.History = nil
	state = s.Dispatch(ctx, UpdateAsset(forged))

	h := state.Assets["id-1"].History
	if len(h) != 1 || h[0].Type != EventCreation {
		t.Fatalf("stored history was rewritten: %+v", h)
	}
}

func TestUpdateAssetReconcilesSeatDiff(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()
	state := s.Dispatch(ctx, AddAsset(Asset{Name: "Old Name", AssignedLicenses: []string{"s1"}}))

	a := state.Assets["id-1"]
	a.Name = "New Name"
	a.AssignedLicenses = []string{"s2"}
	state = s.Dispatch(ctx, UpdateAsset(a))

	released := state.LicenseSeats["s1"]
	if released.Status != SeatAvailable || released.AssignedToType != AssignedToNone || released.AssignedToID != "" {
		t.Fatalf("seat s1 not released: %+v", released)
	}
	relEvt := released.History[len(released.History)-1]
	if relEvt.Description != "Unassigned due to asset update" || relEvt.ChangedFrom != "Old Name" {
		t.Fatalf("unexpected release event: %+v", relEvt)
	}

	claimed := state.LicenseSeats["s2"]
	if claimed.Status != SeatAssigned || claimed.AssignedToID != "id-1" {
		t.Fatalf("seat s2 not claimed: %+v", claimed)
	}
	claimEvt := claimed.History[len(claimed.History)-1]
	if claimEvt.Description != "Assigned to asset: New Name" || claimEvt.ChangedTo != "New Name" {
		t.Fatalf("unexpected claim event: %+v", claimEvt)
	}

	// The seat neither released nor claimed keeps an empty history.
	if got := len(state.LicenseSeats["s3"].History); got != 0 {
		t.Fatalf("untouched seat gained history: %d entries", got)
	}
}

func TestDeleteAssetLeavesSeatsAssigned(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()
	state := s.Dispatch(ctx, AddAsset(Asset{Name: "MacBook", AssignedLicenses: []string{"s1"}}))

	state = s.Dispatch(ctx, DeleteAsset("id-1"))
	if _, ok := state.Assets["id-1"]; ok {
		t.Fatal("asset still present after delete")
	}
	// The seat keeps pointing at the deleted asset id.
	seat := state.LicenseSeats["s1"]
	if seat.Status != SeatAssigned || seat.AssignedToID != "id-1" {
		t.Fatalf("seat was released on asset delete: %+v", seat)
	}
}

func TestAddLicenseMaterializesSeats(t *testing.T) {
	s := newTestStore()
	seats := []LicenseSeat{
		{SeatNumber: "Seat 001"},
		{SeatNumber: "Seat 002"},
	}
	state := s.Dispatch(context.Background(), AddLicense(MasterLicense{Name: "Office 365", TotalSeats: 2}, seats))

	if _, ok := state.MasterLicenses["id-1"]; !ok {
		t.Fatalf("license not stored: %v", state.MasterLicenses)
	}
	if len(state.LicenseSeats) != 2 {
		t.Fatalf("expected 2 seats, got %d", len(state.LicenseSeats))
	}
	for id, seat := range state.LicenseSeats {
		if seat.MasterLicenseID != "id-1" {
			t.Fatalf("seat %s missing back-reference: %+v", id, seat)
		}
		if seat.Status != SeatAvailable || seat.AssignedToType != AssignedToNone {
			t.Fatalf("seat %s missing defaults: %+v", id, seat)
		}
	}
}

func TestDeleteLicenseCascadesToSeats(t *testing.T) {
	st := licenseState()
	st.MasterLicenses["l2"] = MasterLicense{ID: "l2", Name: "Office 365", TotalSeats: 1}
	st.LicenseSeats["s4"] = seatFixture("s4", "l2")
	s := newTestStore(WithInitialState(st))

	state := s.Dispatch(context.Background(), DeleteLicense("l1"))
	if _, ok := state.MasterLicenses["l1"]; ok {
		t.Fatal("license survived delete")
	}
	for id, seat := range state.LicenseSeats {
		if seat.MasterLicenseID == "l1" {
			t.Fatalf("seat %s survived its master's deletion", id)
		}
	}
	if _, ok := state.LicenseSeats["s4"]; !ok {
		t.Fatal("cascade removed a seat of another license")
	}
}

func TestDeleteLicenseKeepsAssetReferences(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()
	state := s.Dispatch(ctx, AddAsset(Asset{Name: "MacBook", AssignedLicenses: []string{"s1"}}))

	state = s.Dispatch(ctx, DeleteLicense("l1"))
	if len(state.LicenseSeats) != 0 {
		t.Fatalf("expected all seats gone, got %d", len(state.LicenseSeats))
	}
	// The asset's seat list now dangles; readers must tolerate it.
	if got := state.Assets["id-1"].AssignedLicenses; len(got) != 1 || got[0] != "s1" {
		t.Fatalf("asset seat list was rewritten: %v", got)
	}
}

func TestUpdateSeatAppendsEvent(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()

	seat := seatFixture("s1", "l1")
	seat.Status = SeatAssigned
	seat.AssignedToType = AssignedToPerson
	seat.AssignedToID = "Sarah Johnson"
	state := s.Dispatch(ctx, UpdateSeat(seat))

	got := state.LicenseSeats["s1"]
	if len(got.History) != 1 {
		t.Fatalf("expected one event, got %d", len(got.History))
	}
	evt := got.History[0]
	if evt.Description != "Seat assigned" || evt.ChangedFrom != "None" || evt.ChangedTo != "Sarah Johnson" {
		t.Fatalf("unexpected seat event: %+v", evt)
	}

	seat = got
	seat.Status = SeatAvailable
	seat.AssignedToType = AssignedToNone
	seat.AssignedToID = ""
	state = s.Dispatch(ctx, UpdateSeat(seat))
	evt = state.LicenseSeats["s1"].History[1]
	if evt.Description != "Seat unassigned" || evt.ChangedFrom != "Sarah Johnson" || evt.ChangedTo != "None" {
		t.Fatalf("unexpected unassign event: %+v", evt)
	}
}

func TestMissingIDsAreNoOps(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	ctx := context.Background()
	before := s.Snapshot()

	cmds := []Command{
		UpdateAsset(Asset{ID: "ghost"}),
		DeleteAsset("ghost"),
		UpdateLicense(MasterLicense{ID: "ghost"}),
		DeleteLicense("ghost"),
		UpdateSeat(LicenseSeat{ID: "ghost"}),
		UpdateAccessory(Accessory{ID: "ghost"}),
		DeleteAccessory("ghost"),
		CheckoutAccessory("ghost"),
		CheckinAccessory("ghost"),
		UpdateComponent(HardwareComponent{ID: "ghost"}),
		DeleteComponent("ghost"),
		CheckoutComponent("ghost"),
		CheckinComponent("ghost"),
		UpdateBatch(ProcurementBatch{ID: "ghost"}),
		DeleteBatch("ghost"),
		UpdateUser(User{ID: "ghost"}),
		DeleteUser("ghost"),
	}
	for _, cmd := range cmds {
		_, changes := s.DispatchChanges(ctx, cmd)
		if len(changes) != 0 {
			t.Fatalf("%s on missing id committed %d changes", cmd.Kind, len(changes))
		}
	}

	after := s.Snapshot()
	if len(after.Assets) != len(before.Assets) || len(after.LicenseSeats) != len(before.LicenseSeats) {
		t.Fatal("no-op commands changed the tree")
	}
}

func TestBulkUpdatesCarryHistoryWithoutNewEvents(t *testing.T) {
	st := NewState()
	st.Accessories["acc1"] = Accessory{
		ID: "acc1", Name: "USB Keyboard", TotalQty: 10,
		History: []HistoryEvent{{ID: "h1", EntityID: "acc1", Type: EventCheckout}},
	}
	s := newTestStore(WithInitialState(st))

	acc := s.Snapshot().Accessories["acc1"]
	acc.CheckedOutQty = 3
	acc.History = nil
	state := s.Dispatch(context.Background(), UpdateAccessory(acc))

	got := state.Accessories["acc1"]
	if got.CheckedOutQty != 3 {
		t.Fatalf("quantity not applied: %+v", got)
	}
	if len(got.History) != 1 || got.History[0].ID != "h1" {
		t.Fatalf("manual history not carried forward: %+v", got.History)
	}
}

func TestStoreDoesNotClampQuantities(t *testing.T) {
	st := NewState()
	st.Accessories["acc1"] = Accessory{ID: "acc1", Name: "USB Keyboard", TotalQty: 5}
	s := newTestStore(WithInitialState(st))

	acc := s.Snapshot().Accessories["acc1"]
	acc.CheckedOutQty = 9
	state := s.Dispatch(context.Background(), UpdateAccessory(acc))
	if got := state.Accessories["acc1"].Remaining(); got != -4 {
		t.Fatalf("store clamped quantities: remaining=%d", got)
	}

	// Checkin past zero is applied as-is as well.
	acc = state.Accessories["acc1"]
	acc.CheckedOutQty = 0
	s.Dispatch(context.Background(), UpdateAccessory(acc))
	state = s.Dispatch(context.Background(), CheckinAccessory("acc1"))
	if got := state.Accessories["acc1"].CheckedOutQty; got != -1 {
		t.Fatalf("store clamped checkin: checked_out=%d", got)
	}
}

func TestAccessoryStockCommands(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	state := s.Dispatch(ctx, AddAccessory(Accessory{Name: "Magic Mouse", TotalQty: 3}))
	acc, ok := state.Accessories["id-1"]
	if !ok {
		t.Fatalf("accessory not stored: %v", state.Accessories)
	}
	if len(acc.History) != 0 {
		t.Fatalf("accessory create appended history: %v", acc.History)
	}

	state = s.Dispatch(ctx, CheckoutAccessory("id-1"))
	if got := state.Accessories["id-1"].CheckedOutQty; got != 1 {
		t.Fatalf("checkout moved %d units", got)
	}
	state = s.Dispatch(ctx, CheckinAccessory("id-1"))
	if got := state.Accessories["id-1"].CheckedOutQty; got != 0 {
		t.Fatalf("checkin left %d units out", got)
	}

	state = s.Dispatch(ctx, DeleteAccessory("id-1"))
	if _, ok := state.Accessories["id-1"]; ok {
		t.Fatal("accessory survived delete")
	}
}

func TestComponentStockCommands(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	state := s.Dispatch(ctx, AddComponent(HardwareComponent{Name: "Crucial SSD", TotalQty: 4, RemainingQty: 4}))
	if _, ok := state.Components["id-1"]; !ok {
		t.Fatalf("component not stored: %v", state.Components)
	}

	state = s.Dispatch(ctx, CheckoutComponent("id-1"))
	if got := state.Components["id-1"].RemainingQty; got != 3 {
		t.Fatalf("checkout left %d remaining", got)
	}
	state = s.Dispatch(ctx, CheckinComponent("id-1"))
	if got := state.Components["id-1"].RemainingQty; got != 4 {
		t.Fatalf("checkin left %d remaining", got)
	}
}

func TestSetCollectionReplacesWholesale(t *testing.T) {
	s := newTestStore(WithInitialState(licenseState()))
	state := s.Dispatch(context.Background(), SetLicenses([]MasterLicense{{ID: "new", Name: "Slack"}}))

	if len(state.MasterLicenses) != 1 {
		t.Fatalf("expected wholesale replacement, got %d licenses", len(state.MasterLicenses))
	}
	if _, ok := state.MasterLicenses["new"]; !ok {
		t.Fatal("replacement license missing")
	}
	// Seats are a separate collection and survive a license replacement.
	if len(state.LicenseSeats) != 3 {
		t.Fatalf("seat collection touched by set_licenses: %d", len(state.LicenseSeats))
	}
}

func TestObserversSeeCommittedChanges(t *testing.T) {
	var seen []Change
	s := newTestStore(WithObserver(func(c Change) { seen = append(seen, c) }))

	s.Dispatch(context.Background(), AddAsset(Asset{Name: "MacBook"}))
	if len(seen) != 1 {
		t.Fatalf("expected one change notification, got %d", len(seen))
	}
	if seen[0].Collection != CollectionAssets || seen[0].Action != ActionCreate || seen[0].EntityID != "id-1" {
		t.Fatalf("unexpected change: %+v", seen[0])
	}

	seen = nil
	s.Dispatch(context.Background(), DeleteAsset("ghost"))
	if len(seen) != 0 {
		t.Fatalf("no-op produced notifications: %v", seen)
	}
}

func TestReferenceDataLifecycle(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	state := s.Dispatch(ctx, AddRole(Role{Name: "Staff", Privileges: []string{"p1"}}))
	if _, ok := state.Roles["id-1"]; !ok {
		t.Fatalf("role not stored: %v", state.Roles)
	}
	state = s.Dispatch(ctx, AddGroup(UserGroup{Name: "General", RoleID: "id-1"}))
	state = s.Dispatch(ctx, AddUser(User{Name: "Mike", Username: "mpeters", GroupID: "id-2", Status: UserActive}))

	if state.Users["id-3"].GroupID != "id-2" {
		t.Fatalf("user group reference lost: %+v", state.Users["id-3"])
	}

	// Deleting the role leaves the group's reference dangling.
	state = s.Dispatch(ctx, DeleteRole("id-1"))
	if _, ok := state.Roles["id-1"]; ok {
		t.Fatal("role survived delete")
	}
	if state.Groups["id-2"].RoleID != "id-1" {
		t.Fatalf("group role reference was rewritten: %+v", state.Groups["id-2"])
	}
}
