package dashboard

import (
	"github.com/shopspring/decimal"

	"inventar.org/internal/inventory"
)

// Stats is the headline summary shown on the dashboard landing view.
type Stats struct {
	TotalAssets       int             `json:"total_assets"`
	ActiveAssets      int             `json:"active_assets"`
	MaintenanceAssets int             `json:"maintenance_assets"`
	TotalValue        decimal.Decimal `json:"total_value"`

	TotalLicenses    int `json:"total_licenses"`
	TotalSeats       int `json:"total_seats"`
	AssignedSeats    int `json:"assigned_seats"`
	ExpiringLicenses int `json:"expiring_licenses"`

	LowStockAccessories int `json:"low_stock_accessories"`
	LowStockComponents  int `json:"low_stock_components"`
	PendingBatches      int `json:"pending_batches"`
}

// ComputeStats derives the summary from a snapshot. TotalValue sums current
// asset values, not purchase cost.
func ComputeStats(state inventory.State) Stats {
	var st Stats

	st.TotalAssets = len(state.Assets)
	total := decimal.Zero
	for _, a := range state.Assets {
		switch a.Status {
		case inventory.AssetActive:
			st.ActiveAssets++
		case inventory.AssetMaintenance:
			st.MaintenanceAssets++
		}
		total = total.Add(a.CurrentValue)
	}
	st.TotalValue = total

	st.TotalLicenses = len(state.MasterLicenses)
	for _, l := range state.MasterLicenses {
		if l.Status != inventory.LicenseActive {
			st.ExpiringLicenses++
		}
	}
	st.TotalSeats = len(state.LicenseSeats)
	for _, seat := range state.LicenseSeats {
		if seat.Status == inventory.SeatAssigned {
			st.AssignedSeats++
		}
	}

	for _, acc := range state.Accessories {
		if acc.LowStock() {
			st.LowStockAccessories++
		}
	}
	for _, comp := range state.Components {
		if comp.LowStock() {
			st.LowStockComponents++
		}
	}
	for _, b := range state.ProcurementBatches {
		if b.Status == inventory.BatchPending {
			st.PendingBatches++
		}
	}
	return st
}
