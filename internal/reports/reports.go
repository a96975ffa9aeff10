// Package reports projects snapshot collections into flat rows and renders
// them as CSV for export.
package reports

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"inventar.org/internal/inventory"
)

// AssetRow is one line of the asset register report.
type AssetRow struct {
	AssetTag     string
	Name         string
	SerialNumber string
	Model        string
	Type         string
	Status       string
	Location     string
	Assignee     string
	Department   string
	PurchaseDate string
	PurchaseCost string
	CurrentValue string
}

// AssetRows projects every asset, ordered by asset tag.
func AssetRows(state inventory.State) []AssetRow {
	rows := make([]AssetRow, 0, len(state.Assets))
	for _, a := range state.Assets {
		rows = append(rows, AssetRow{
			AssetTag:     a.AssetTag,
			Name:         a.Name,
			SerialNumber: a.SerialNumber,
			Model:        a.Model,
			Type:         a.Type,
			Status:       string(a.Status),
			Location:     a.Location,
			Assignee:     a.Assignee,
			Department:   a.Department,
			PurchaseDate: a.PurchaseDate,
			PurchaseCost: a.PurchaseCost.StringFixed(2),
			CurrentValue: a.CurrentValue.StringFixed(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AssetTag < rows[j].AssetTag })
	return rows
}

// WriteAssetsCSV renders the asset register to w.
func WriteAssetsCSV(w io.Writer, state inventory.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Asset Tag", "Name", "Serial Number", "Model", "Type", "Status", "Location", "Assignee", "Department", "Purchase Date", "Purchase Cost", "Current Value"}); err != nil {
		return err
	}
	for _, r := range AssetRows(state) {
		record := []string{r.AssetTag, r.Name, r.SerialNumber, r.Model, r.Type, r.Status, r.Location, r.Assignee, r.Department, r.PurchaseDate, r.PurchaseCost, r.CurrentValue}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LicenseRow is one line of the license utilization report.
type LicenseRow struct {
	Name           string
	Manufacturer   string
	Category       string
	TotalSeats     int
	AssignedSeats  int
	AvailableSeats int
	ExpirationDate string
	Status         string
}

// LicenseRows projects every master license with seat utilization counts,
// ordered by name.
func LicenseRows(state inventory.State) []LicenseRow {
	assigned := make(map[string]int)
	for _, seat := range state.LicenseSeats {
		if seat.Status == inventory.SeatAssigned {
			assigned[seat.MasterLicenseID]++
		}
	}
	rows := make([]LicenseRow, 0, len(state.MasterLicenses))
	for _, l := range state.MasterLicenses {
		rows = append(rows, LicenseRow{
			Name:           l.Name,
			Manufacturer:   l.Manufacturer,
			Category:       l.Category,
			TotalSeats:     l.TotalSeats,
			AssignedSeats:  assigned[l.ID],
			AvailableSeats: l.TotalSeats - assigned[l.ID],
			ExpirationDate: l.ExpirationDate,
			Status:         string(l.Status),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// WriteLicensesCSV renders the license utilization report to w.
func WriteLicensesCSV(w io.Writer, state inventory.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Manufacturer", "Category", "Total Seats", "Assigned", "Available", "Expiration Date", "Status"}); err != nil {
		return err
	}
	for _, r := range LicenseRows(state) {
		record := []string{r.Name, r.Manufacturer, r.Category, strconv.Itoa(r.TotalSeats), strconv.Itoa(r.AssignedSeats), strconv.Itoa(r.AvailableSeats), r.ExpirationDate, r.Status}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// AccessoryRow is one line of the accessory stock report.
type AccessoryRow struct {
	Name       string
	Category   string
	Location   string
	Total      int
	CheckedOut int
	Remaining  int
	UnitCost   string
	TotalValue string
}

// AccessoryRows projects every accessory with stock counts and a total value
// of the holding, ordered by name.
func AccessoryRows(state inventory.State) []AccessoryRow {
	rows := make([]AccessoryRow, 0, len(state.Accessories))
	for _, a := range state.Accessories {
		value := a.UnitCost.Mul(decimal.NewFromInt(int64(a.TotalQty)))
		rows = append(rows, AccessoryRow{
			Name:       a.Name,
			Category:   a.Category,
			Location:   a.Location,
			Total:      a.TotalQty,
			CheckedOut: a.CheckedOutQty,
			Remaining:  a.Remaining(),
			UnitCost:   a.UnitCost.StringFixed(2),
			TotalValue: value.StringFixed(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// WriteAccessoriesCSV renders the accessory stock report to w.
func WriteAccessoriesCSV(w io.Writer, state inventory.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Category", "Location", "Total", "Checked Out", "Remaining", "Unit Cost", "Total Value"}); err != nil {
		return err
	}
	for _, r := range AccessoryRows(state) {
		record := []string{r.Name, r.Category, r.Location, strconv.Itoa(r.Total), strconv.Itoa(r.CheckedOut), strconv.Itoa(r.Remaining), r.UnitCost, r.TotalValue}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ComponentRow is one line of the component stock report.
type ComponentRow struct {
	Name         string
	Serial       string
	Category     string
	Location     string
	OrderNumber  string
	PurchaseDate string
	Total        int
	Remaining    int
	UnitCost     string
}

// ComponentRows projects every hardware component, ordered by name.
func ComponentRows(state inventory.State) []ComponentRow {
	rows := make([]ComponentRow, 0, len(state.Components))
	for _, c := range state.Components {
		rows = append(rows, ComponentRow{
			Name:         c.Name,
			Serial:       c.Serial,
			Category:     c.Category,
			Location:     c.Location,
			OrderNumber:  c.OrderNumber,
			PurchaseDate: c.PurchaseDate,
			Total:        c.TotalQty,
			Remaining:    c.RemainingQty,
			UnitCost:     c.UnitCost.StringFixed(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// WriteComponentsCSV renders the component stock report to w.
func WriteComponentsCSV(w io.Writer, state inventory.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Serial", "Category", "Location", "Order Number", "Purchase Date", "Total", "Remaining", "Unit Cost"}); err != nil {
		return err
	}
	for _, r := range ComponentRows(state) {
		record := []string{r.Name, r.Serial, r.Category, r.Location, r.OrderNumber, r.PurchaseDate, strconv.Itoa(r.Total), strconv.Itoa(r.Remaining), r.UnitCost}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
