package dashboard

import (
	"context"
	"fmt"

	"inventar.org/internal/inventory"
)

// Accessory and component stock moves. The store applies the one-unit shift
// without re-validating, so the bounds checks live here, against the snapshot
// the operation read.

// CheckoutAccessory hands one unit out.
func (s *Service) CheckoutAccessory(ctx context.Context, id string) (inventory.State, error) {
	snap := s.store.Snapshot()
	acc, ok := snap.Accessories[id]
	if !ok {
		return snap, fmt.Errorf("%w: accessory %s", ErrNotFound, id)
	}
	if acc.Remaining() <= 0 {
		return snap, fmt.Errorf("%w: accessory %s", ErrNoneAvailable, id)
	}
	return s.Apply(ctx, inventory.CheckoutAccessory(id)), nil
}

// CheckinAccessory takes one unit back.
func (s *Service) CheckinAccessory(ctx context.Context, id string) (inventory.State, error) {
	snap := s.store.Snapshot()
	acc, ok := snap.Accessories[id]
	if !ok {
		return snap, fmt.Errorf("%w: accessory %s", ErrNotFound, id)
	}
	if acc.CheckedOutQty <= 0 {
		return snap, fmt.Errorf("%w: accessory %s", ErrNoneCheckedOut, id)
	}
	return s.Apply(ctx, inventory.CheckinAccessory(id)), nil
}

// CheckoutComponent consumes one unit of stock.
func (s *Service) CheckoutComponent(ctx context.Context, id string) (inventory.State, error) {
	snap := s.store.Snapshot()
	comp, ok := snap.Components[id]
	if !ok {
		return snap, fmt.Errorf("%w: component %s", ErrNotFound, id)
	}
	if comp.RemainingQty <= 0 {
		return snap, fmt.Errorf("%w: component %s", ErrNoneAvailable, id)
	}
	return s.Apply(ctx, inventory.CheckoutComponent(id)), nil
}

// CheckinComponent returns one unit to stock.
func (s *Service) CheckinComponent(ctx context.Context, id string) (inventory.State, error) {
	snap := s.store.Snapshot()
	comp, ok := snap.Components[id]
	if !ok {
		return snap, fmt.Errorf("%w: component %s", ErrNotFound, id)
	}
	if comp.RemainingQty >= comp.TotalQty {
		return snap, fmt.Errorf("%w: component %s", ErrNoneCheckedOut, id)
	}
	return s.Apply(ctx, inventory.CheckinComponent(id)), nil
}
