// Package dashboard is the command layer driving the inventory store on
// behalf of the UI. It owns the guards the store deliberately does not
// enforce (stock bounds on checkout and checkin), instruments every dispatch
// and writes the operator audit line.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventar.org/internal/audit"
	"inventar.org/internal/inventory"
	"inventar.org/internal/obs"
)

var (
	// ErrNotFound means the referenced entity is absent from the snapshot the
	// operation read.
	ErrNotFound = errors.New("dashboard: entity not found")
	// ErrNoneAvailable means a checkout was attempted with nothing in stock.
	ErrNoneAvailable = errors.New("dashboard: no units available")
	// ErrNoneCheckedOut means a checkin was attempted with nothing outstanding.
	ErrNoneCheckedOut = errors.New("dashboard: no units checked out")
)

// Service wraps the store with the operations the dashboard exposes.
type Service struct {
	store *inventory.Store
}

// New builds a Service over store.
func New(store *inventory.Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the current committed state.
func (s *Service) Snapshot() inventory.State {
	return s.store.Snapshot()
}

// Apply dispatches an arbitrary command with full instrumentation. Typed
// operations below go through it as well.
func (s *Service) Apply(ctx context.Context, cmd inventory.Command) inventory.State {
	before := s.store.Snapshot()
	start := time.Now()
	after, changes := s.store.DispatchChanges(ctx, cmd)
	elapsed := time.Since(start)

	outcome := obs.OutcomeApplied
	if len(changes) == 0 {
		outcome = obs.OutcomeNoop
	}
	obs.ObserveCommand(string(cmd.Kind), outcome, elapsed)

	if len(changes) > 0 {
		countAppendedEvents(before, after, changes)
		publishEntityCounts(after)
		_ = audit.LogCommand(ctx, string(cmd.Kind), auditFields(changes))
	}
	return after
}

// Asset operations ----------------------------------------------------------

func (s *Service) AddAsset(ctx context.Context, a inventory.Asset) inventory.State {
	return s.Apply(ctx, inventory.AddAsset(a))
}

func (s *Service) UpdateAsset(ctx context.Context, a inventory.Asset) inventory.State {
	return s.Apply(ctx, inventory.UpdateAsset(a))
}

func (s *Service) DeleteAsset(ctx context.Context, id string) inventory.State {
	return s.Apply(ctx, inventory.DeleteAsset(id))
}

// License operations --------------------------------------------------------

// AddLicense creates the master record and materializes one seat per declared
// TotalSeats, numbered Seat 001 upward.
func (s *Service) AddLicense(ctx context.Context, l inventory.MasterLicense) inventory.State {
	seats := make([]inventory.LicenseSeat, 0, l.TotalSeats)
	for i := 0; i < l.TotalSeats; i++ {
		seats = append(seats, inventory.LicenseSeat{
			SeatNumber:     fmt.Sprintf("Seat %03d", i+1),
			Status:         inventory.SeatAvailable,
			AssignedToType: inventory.AssignedToNone,
			History:        []inventory.HistoryEvent{},
		})
	}
	return s.Apply(ctx, inventory.AddLicense(l, seats))
}

func (s *Service) UpdateLicense(ctx context.Context, l inventory.MasterLicense) inventory.State {
	return s.Apply(ctx, inventory.UpdateLicense(l))
}

func (s *Service) DeleteLicense(ctx context.Context, id string) inventory.State {
	return s.Apply(ctx, inventory.DeleteLicense(id))
}

// AssignSeat gives the seat to a person or an asset.
func (s *Service) AssignSeat(ctx context.Context, seatID string, to inventory.AssigneeType, assigneeID string) (inventory.State, error) {
	snap := s.store.Snapshot()
	seat, ok := snap.LicenseSeats[seatID]
	if !ok {
		return snap, fmt.Errorf("%w: seat %s", ErrNotFound, seatID)
	}
	seat.Status = inventory.SeatAssigned
	seat.AssignedToType = to
	seat.AssignedToID = assigneeID
	return s.Apply(ctx, inventory.UpdateSeat(seat)), nil
}

// UnassignSeat returns the seat to the pool.
func (s *Service) UnassignSeat(ctx context.Context, seatID string) (inventory.State, error) {
	snap := s.store.Snapshot()
	seat, ok := snap.LicenseSeats[seatID]
	if !ok {
		return snap, fmt.Errorf("%w: seat %s", ErrNotFound, seatID)
	}
	seat.Status = inventory.SeatAvailable
	seat.AssignedToType = inventory.AssignedToNone
	seat.AssignedToID = ""
	return s.Apply(ctx, inventory.UpdateSeat(seat)), nil
}

// countAppendedEvents feeds the history metric with the events this command
// derived, computed by diffing the touched entities' logs.
func countAppendedEvents(before, after inventory.State, changes []inventory.Change) {
	for _, ch := range changes {
		if ch.EntityID == "" {
			continue
		}
		prior := historyOf(before, ch.Collection, ch.EntityID)
		next := historyOf(after, ch.Collection, ch.EntityID)
		for i := len(prior); i < len(next); i++ {
			obs.CountHistoryEvent(string(next[i].Type))
		}
	}
}

func historyOf(state inventory.State, c inventory.Collection, id string) []inventory.HistoryEvent {
	switch c {
	case inventory.CollectionAssets:
		return state.Assets[id].History
	case inventory.CollectionLicenses:
		return state.MasterLicenses[id].History
	case inventory.CollectionSeats:
		return state.LicenseSeats[id].History
	case inventory.CollectionAccessories:
		return state.Accessories[id].History
	case inventory.CollectionComponents:
		return state.Components[id].History
	case inventory.CollectionBatches:
		return state.ProcurementBatches[id].History
	default:
		return nil
	}
}

func publishEntityCounts(state inventory.State) {
	obs.SetEntityCount(string(inventory.CollectionAssets), len(state.Assets))
	obs.SetEntityCount(string(inventory.CollectionLicenses), len(state.MasterLicenses))
	obs.SetEntityCount(string(inventory.CollectionSeats), len(state.LicenseSeats))
	obs.SetEntityCount(string(inventory.CollectionAccessories), len(state.Accessories))
	obs.SetEntityCount(string(inventory.CollectionComponents), len(state.Components))
	obs.SetEntityCount(string(inventory.CollectionBatches), len(state.ProcurementBatches))
	obs.SetEntityCount(string(inventory.CollectionUsers), len(state.Users))
}

func auditFields(changes []inventory.Change) map[string]any {
	ids := make([]string, 0, len(changes))
	collections := make([]string, 0, len(changes))
	for _, ch := range changes {
		if ch.EntityID != "" {
			ids = append(ids, ch.EntityID)
		}
		collections = append(collections, string(ch.Collection)+"/"+string(ch.Action))
	}
	return map[string]any{
		"changes":      collections,
		"entity_ids":   ids,
		"change_count": len(changes),
	}
}
