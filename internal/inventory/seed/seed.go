// Package seed provides the deterministic demo dataset the dashboard boots
// from. Collaborators treat it as the remote system of record: the apiclient
// serves copies of it, and tests use it as a known-good tree.
package seed

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"inventar.org/internal/auth"
	"inventar.org/internal/inventory"
)

// Departments is the fixed department reference list.
var Departments = []string{"Engineering", "Design", "HR", "Operations", "Sales"}

// Assets returns the seed hardware assets.
func Assets() []inventory.Asset {
	return []inventory.Asset{
		{
			ID:           "1",
			Name:         "MacBook Pro M3",
			Image:        "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&q=80&w=200",
			AssetTag:     "AST-001",
			SerialNumber: "C02XYZ123",
			Model:        "M3 Pro 14-inch",
			Type:         "Laptop",
			Status:       inventory.AssetActive,
			Location:     "HQ - Floor 2",
			PurchaseCost: decimal.NewFromInt(2499),
			CurrentValue: decimal.NewFromInt(2100),
			Assignee:     "Sarah Johnson",
			Department:   "Engineering",
			PurchaseDate: "2024-01-15",
			History: []inventory.HistoryEvent{
				{
					ID:          "h1",
					EntityID:    "1",
					Date:        time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
					Type:        inventory.EventCreation,
					Description: "Asset created and assigned to Sarah Johnson",
					ChangedTo:   "Sarah Johnson",
				},
			},
			AssignedLicenses: []string{},
		},
		{
			ID:               "2",
			Name:             "Dell XPS 15",
			Image:            "https://images.unsplash.com/photo-1593642632823-8f78536788c6?auto=format&fit=crop&q=80&w=200",
			AssetTag:         "AST-002",
			SerialNumber:     "DL-456-ABC",
			Model:            "9530",
			Type:             "Laptop",
			Status:           inventory.AssetMaintenance,
			Location:         "IT Repair Bay",
			PurchaseCost:     decimal.NewFromInt(1899),
			CurrentValue:     decimal.NewFromInt(1200),
			Assignee:         "Mike Peters",
			Department:       "Engineering",
			PurchaseDate:     "2023-11-20",
			History:          []inventory.HistoryEvent{},
			AssignedLicenses: []string{},
		},
		{
			ID:               "3",
			Name:             "iPhone 15 Pro",
			Image:            "https://images.unsplash.com/photo-1696446701796-da61225697cc?auto=format&fit=crop&q=80&w=200",
			AssetTag:         "AST-003",
			SerialNumber:     "IP15-789",
			Model:            "Pro 256GB",
			Type:             "Mobile",
			Status:           inventory.AssetActive,
			Location:         "Remote",
			PurchaseCost:     decimal.NewFromInt(999),
			CurrentValue:     decimal.NewFromInt(850),
			Assignee:         "Sarah Johnson",
			Department:       "Design",
			PurchaseDate:     "2024-02-01",
			History:          []inventory.HistoryEvent{},
			AssignedLicenses: []string{},
		},
	}
}

// MasterLicenses returns the seed license records.
func MasterLicenses() []inventory.MasterLicense {
	return []inventory.MasterLicense{
		{
			ID:             "l1",
			Name:           "Adobe Creative Cloud",
			Key:            "ADOBE-CC-2024-XXXX",
			Category:       "Design",
			Manufacturer:   "Adobe",
			TotalSeats:     3,
			ExpirationDate: "2025-12-31",
			Status:         inventory.LicenseActive,
			History:        []inventory.HistoryEvent{},
		},
		{
			ID:             "l2",
			Name:           "Microsoft Office 365",
			Key:            "MSFT-O365-YYYY",
			Category:       "Productivity",
			Manufacturer:   "Microsoft",
			TotalSeats:     2,
			ExpirationDate: "2024-11-15",
			Status:         inventory.LicenseExpiring,
			History:        []inventory.HistoryEvent{},
		},
	}
}

// LicenseSeats returns the seed seats; seat s2 is held by asset 1 and s1 by
// a person, exercising both assignment flavours.
func LicenseSeats() []inventory.LicenseSeat {
	return []inventory.LicenseSeat{
		{ID: "s1", MasterLicenseID: "l1", SeatNumber: "Seat 001", Status: inventory.SeatAssigned, AssignedToType: inventory.AssignedToPerson, AssignedToID: "Sarah Johnson", History: []inventory.HistoryEvent{}},
		{ID: "s2", MasterLicenseID: "l1", SeatNumber: "Seat 002", Status: inventory.SeatAssigned, AssignedToType: inventory.AssignedToAsset, AssignedToID: "1", History: []inventory.HistoryEvent{}},
		{ID: "s3", MasterLicenseID: "l1", SeatNumber: "Seat 003", Status: inventory.SeatAvailable, AssignedToType: inventory.AssignedToNone, History: []inventory.HistoryEvent{}},
		{ID: "s4", MasterLicenseID: "l2", SeatNumber: "Seat 001", Status: inventory.SeatAvailable, AssignedToType: inventory.AssignedToNone, History: []inventory.HistoryEvent{}},
		{ID: "s5", MasterLicenseID: "l2", SeatNumber: "Seat 002", Status: inventory.SeatAvailable, AssignedToType: inventory.AssignedToNone, History: []inventory.HistoryEvent{}},
	}
}

// Accessories returns the seed bulk-tracked accessories.
func Accessories() []inventory.Accessory {
	return []inventory.Accessory{
		{ID: "acc1", Name: "USB Keyboard", Category: "Keyboards", ModelNumber: "15451018", Location: "New Paulineville", MinQty: 2, TotalQty: 15, CheckedOutQty: 0, UnitCost: decimal.NewFromInt(25), History: []inventory.HistoryEvent{}},
		{ID: "acc2", Name: "Bluetooth Keyboard", Category: "Keyboards", ModelNumber: "9824292", Location: "Zitafurt", MinQty: 2, TotalQty: 10, CheckedOutQty: 0, UnitCost: decimal.NewFromInt(45), History: []inventory.HistoryEvent{}},
		{ID: "acc3", Name: "Magic Mouse", Category: "Mouse", ModelNumber: "32276485", Location: "Port Haylee", MinQty: 2, TotalQty: 13, CheckedOutQty: 0, UnitCost: decimal.NewFromInt(79), History: []inventory.HistoryEvent{}},
		{ID: "acc4", Name: "Sculpt Comfort Mouse", Category: "Mouse", ModelNumber: "4874953", Location: "Jaskolskishire", MinQty: 2, TotalQty: 13, CheckedOutQty: 0, UnitCost: decimal.NewFromInt(35), History: []inventory.HistoryEvent{}},
	}
}

// Components returns the seed hardware components.
func Components() []inventory.HardwareComponent {
	return []inventory.HardwareComponent{
		{ID: "comp1", Name: "Crucial 4GB DDR3L-1600 SODIMM", Serial: "12ecc97f-6ca8-34c6-99e4-3d870d14fb65", Category: "RAM", ModelNumber: "6695905", Location: "Zitafurt", OrderNumber: "13964051", PurchaseDate: "2020-10-19", MinQty: 2, TotalQty: 10, RemainingQty: 10, UnitCost: decimal.RequireFromString("521.12"), History: []inventory.HistoryEvent{}},
		{ID: "comp2", Name: "Crucial 8GB DDR3L-1600 SODIMM Memory for Mac", Serial: "709cdae8-f3e3-3d36-9eeb-e1562d407b76", Category: "RAM", ModelNumber: "28793727", Location: "Arvelmouth", OrderNumber: "30866139", PurchaseDate: "1986-05-13", MinQty: 2, TotalQty: 10, RemainingQty: 10, UnitCost: decimal.RequireFromString("437038275.28"), History: []inventory.HistoryEvent{}},
		{ID: "comp3", Name: "Crucial BX300 120GB SATA Internal SSD", Serial: "663c5e9f-7295-3617-b7bf-acd9ece50ef8", Category: "HDD/SSD", ModelNumber: "8030373", Location: "Botsfordmouth", OrderNumber: "47455811", PurchaseDate: "1999-06-03", MinQty: 2, TotalQty: 10, RemainingQty: 10, UnitCost: decimal.RequireFromString("6987.09"), History: []inventory.HistoryEvent{}},
		{ID: "comp4", Name: "Crucial BX300 240GB SATA Internal SSD", Serial: "56931a73-765f-3be6-a7f7-1ce02e03f5aa", Category: "HDD/SSD", ModelNumber: "19918485", Location: "New Paulineville", OrderNumber: "42325832", PurchaseDate: "2009-12-11", MinQty: 2, TotalQty: 10, RemainingQty: 10, UnitCost: decimal.RequireFromString("652653.25"), History: []inventory.HistoryEvent{}},
	}
}

// ProcurementBatches returns the seed batches: one fully documented and
// commissioned with a 5-unit shortfall, one still pending.
func ProcurementBatches() []inventory.ProcurementBatch {
	return []inventory.ProcurementBatch{
		{
			ID:   "pb1",
			Name: "Batch 2024-001 - Laptops for Engineering",
			PO: &inventory.PurchaseOrder{
				PONumber:  "PO-2024-001",
				Vendor:    "Dell Technologies",
				TotalCost: decimal.NewFromInt(150000),
				Date:      "2024-01-15",
			},
			DN: &inventory.DeliveryNote{
				WaybillNumber: "WB-Dell-9981",
				ReceivedDate:  "2024-01-20",
				Condition:     inventory.DeliveryGood,
			},
			Minutes: &inventory.WardMinutes{
				MeetingRefNo:     "WM-2024-01",
				MeetingDate:      "2024-01-22",
				CommitteeSignOff: true,
			},
			OrderedQty:  100,
			ReceivedQty: 95,
			ItemType:    inventory.BatchItemAsset,
			Status:      inventory.BatchCommissioned,
			Notes:       "5 units delayed by vendor.",
			History:     []inventory.HistoryEvent{},
		},
		{
			ID:   "pb2",
			Name: "Batch 2024-002 - Microsoft Office 365 Licenses",
			PO: &inventory.PurchaseOrder{
				PONumber:  "PO-2024-002",
				Vendor:    "Microsoft Corp",
				TotalCost: decimal.NewFromInt(5000),
				Date:      "2024-02-01",
			},
			OrderedQty:  50,
			ReceivedQty: 0,
			ItemType:    inventory.BatchItemLicense,
			Status:      inventory.BatchPending,
			History:     []inventory.HistoryEvent{},
		},
	}
}

// Roles returns the seed roles wired to the builtin privilege catalog.
func Roles() []inventory.Role {
	all := make([]string, 0, len(auth.BuiltinPrivileges))
	for _, p := range auth.BuiltinPrivileges {
		all = append(all, p.ID)
	}
	return []inventory.Role{
		{ID: "r1", Name: "Administrator", Privileges: all},
		{ID: "r2", Name: "IT Manager", Privileges: []string{"p1", "p2", "p3", "p5", "p7"}},
		{ID: "r3", Name: "Staff", Privileges: []string{"p1", "p7"}},
	}
}

// Groups returns the seed user groups.
func Groups() []inventory.UserGroup {
	return []inventory.UserGroup{
		{ID: "g1", Name: "IT Department", Description: "Core IT team", RoleID: "r1"},
		{ID: "g2", Name: "Management", Description: "Executive team", RoleID: "r2"},
		{ID: "g3", Name: "General Staff", Description: "All other employees", RoleID: "r3"},
	}
}

// Users returns the seed users.
func Users() []inventory.User {
	return []inventory.User{
		{ID: "u1", Name: "Admin User", Email: "admin@example.com", Username: "admin", Status: inventory.UserActive, GroupID: "g1", Department: "Operations", Location: "HQ - Floor 1"},
		{ID: "u2", Name: "Sarah Johnson", Email: "sarah.j@example.com", Username: "sjohnson", Status: inventory.UserActive, GroupID: "g1", Department: "Engineering", Location: "HQ - Floor 2"},
		{ID: "u3", Name: "Mike Peters", Email: "mike.p@example.com", Username: "mpeters", Status: inventory.UserActive, GroupID: "g3", Department: "Engineering", Location: "HQ - Floor 2"},
	}
}

// State assembles the full initial tree: seeded collections plus reference
// lists, with locations and asset types derived from the assets.
func State() inventory.State {
	state := inventory.NewState()
	for _, a := range Assets() {
		state.Assets[a.ID] = a
	}
	for _, l := range MasterLicenses() {
		state.MasterLicenses[l.ID] = l
	}
	for _, s := range LicenseSeats() {
		state.LicenseSeats[s.ID] = s
	}
	for _, a := range Accessories() {
		state.Accessories[a.ID] = a
	}
	for _, c := range Components() {
		state.Components[c.ID] = c
	}
	for _, b := range ProcurementBatches() {
		state.ProcurementBatches[b.ID] = b
	}
	for _, u := range Users() {
		state.Users[u.ID] = u
	}
	for _, g := range Groups() {
		state.Groups[g.ID] = g
	}
	for _, r := range Roles() {
		state.Roles[r.ID] = r
	}
	for _, p := range auth.BuiltinPrivileges {
		state.Privileges[p.ID] = p
	}

	state.Departments = append([]string(nil), Departments...)
	state.Locations = uniqueSorted(Assets(), func(a inventory.Asset) string { return a.Location })
	state.AssetTypes = uniqueSorted(Assets(), func(a inventory.Asset) string { return a.Type })
	return state
}

func uniqueSorted(assets []inventory.Asset, key func(inventory.Asset) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range assets {
		k := key(a)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
