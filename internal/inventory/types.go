package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus enumerates the lifecycle states of a hardware asset.
type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
)

// EventType classifies a history event.
type EventType string

const (
	EventCreation    EventType = "creation"
	EventAssignment  EventType = "assignment"
	EventStatus      EventType = "status"
	EventMaintenance EventType = "maintenance"
	EventUpdate      EventType = "update"
	EventLocation    EventType = "location"
	EventCheckout    EventType = "checkout"
	EventCheckin     EventType = "checkin"
	EventProcurement EventType = "procurement"
)

// HistoryEvent is one immutable audit-trail entry attached to an entity.
// Entries are appended in insertion order and never mutated or removed;
// consumers sort newest-first by Date for display.
type HistoryEvent struct {
	ID          string    `json:"id"`
	EntityID    string    `json:"entity_id"`
	Date        time.Time `json:"date"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	ChangedFrom string    `json:"changed_from,omitempty"`
	ChangedTo   string    `json:"changed_to,omitempty"`
}

// Asset is a tracked hardware asset. AssignedLicenses holds LicenseSeat ids.
type Asset struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Image              string          `json:"image,omitempty"`
	AssetTag           string          `json:"asset_tag"`
	SerialNumber       string          `json:"serial_number"`
	Model              string          `json:"model"`
	Status             AssetStatus     `json:"status"`
	Location           string          `json:"location"`
	PurchaseCost       decimal.Decimal `json:"purchase_cost"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	Assignee           string          `json:"assignee"`
	Department         string          `json:"department"`
	PurchaseDate       string          `json:"purchase_date"`
	History            []HistoryEvent  `json:"history"`
	AssignedLicenses   []string        `json:"assigned_licenses"`
	ProcurementBatchID string          `json:"procurement_batch_id,omitempty"`
}

// LicenseStatus enumerates master license expiry states.
type LicenseStatus string

const (
	LicenseActive   LicenseStatus = "active"
	LicenseExpiring LicenseStatus = "expiring"
	LicenseExpired  LicenseStatus = "expired"
)

// MasterLicense declares seat capacity for a purchased software license.
// Its seats are separate records cross-referenced by MasterLicenseID.
type MasterLicense struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Key                string         `json:"key"`
	Category           string         `json:"category"`
	Manufacturer       string         `json:"manufacturer"`
	TotalSeats         int            `json:"total_seats"`
	PurchaseDate       string         `json:"purchase_date,omitempty"`
	ExpirationDate     string         `json:"expiration_date"`
	Status             LicenseStatus  `json:"status"`
	Notes              string         `json:"notes,omitempty"`
	History            []HistoryEvent `json:"history"`
	ProcurementBatchID string         `json:"procurement_batch_id,omitempty"`
}

// SeatStatus enumerates license seat occupancy.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatAssigned  SeatStatus = "assigned"
)

// AssigneeType says what kind of holder a seat is assigned to.
type AssigneeType string

const (
	AssignedToNone   AssigneeType = "unassigned"
	AssignedToPerson AssigneeType = "person"
	AssignedToAsset  AssigneeType = "asset"
)

// LicenseSeat is one assignable unit of a master license.
// Invariant: Status == SeatAssigned iff AssignedToType != AssignedToNone and
// AssignedToID is non-empty. AssignedToID is a person name or an Asset id.
type LicenseSeat struct {
	ID              string         `json:"id"`
	MasterLicenseID string         `json:"master_license_id"`
	SeatNumber      string         `json:"seat_number"`
	Status          SeatStatus     `json:"status"`
	AssignedToType  AssigneeType   `json:"assigned_to_type"`
	AssignedToID    string         `json:"assigned_to_id,omitempty"`
	History         []HistoryEvent `json:"history"`
}

// Accessory is a bulk-tracked consumable counted by a checked-out quantity.
type Accessory struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	Category      string          `json:"category"`
	ModelNumber   string          `json:"model_number"`
	Location      string          `json:"location"`
	MinQty        int             `json:"min_qty"`
	TotalQty      int             `json:"total_qty"`
	CheckedOutQty int             `json:"checked_out_qty"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	Notes         string          `json:"notes,omitempty"`
	History       []HistoryEvent  `json:"history"`
}

// Remaining reports how many units are still in stock.
func (a Accessory) Remaining() int { return a.TotalQty - a.CheckedOutQty }

// LowStock reports whether the remaining quantity is at or below the minimum.
func (a Accessory) LowStock() bool { return a.Remaining() <= a.MinQty }

// HardwareComponent is a bulk-tracked part counted by remaining quantity.
type HardwareComponent struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Serial       string          `json:"serial"`
	Category     string          `json:"category"`
	ModelNumber  string          `json:"model_number"`
	Location     string          `json:"location"`
	OrderNumber  string          `json:"order_number"`
	PurchaseDate string          `json:"purchase_date"`
	MinQty       int             `json:"min_qty"`
	TotalQty     int             `json:"total_qty"`
	RemainingQty int             `json:"remaining_qty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Notes        string          `json:"notes,omitempty"`
	History      []HistoryEvent  `json:"history"`
}

// LowStock reports whether the remaining quantity is at or below the minimum.
func (c HardwareComponent) LowStock() bool { return c.RemainingQty <= c.MinQty }

// PurchaseOrder documents the ordering side of a procurement batch.
type PurchaseOrder struct {
	PONumber    string          `json:"po_number"`
	Vendor      string          `json:"vendor"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Date        string          `json:"date"`
	DocumentURL string          `json:"document_url,omitempty"`
}

// DeliveryCondition describes the state of a received delivery.
type DeliveryCondition string

const (
	DeliveryGood    DeliveryCondition = "good"
	DeliveryDamaged DeliveryCondition = "damaged"
	DeliveryPartial DeliveryCondition = "partial"
)

// DeliveryNote documents goods received against a batch.
type DeliveryNote struct {
	WaybillNumber string            `json:"waybill_number"`
	ReceivedDate  string            `json:"received_date"`
	Condition     DeliveryCondition `json:"condition"`
	DocumentURL   string            `json:"document_url,omitempty"`
}

// WardMinutes records the committee sign-off for a batch.
type WardMinutes struct {
	MeetingRefNo     string `json:"meeting_ref_no"`
	MeetingDate      string `json:"meeting_date"`
	CommitteeSignOff bool   `json:"committee_sign_off"`
	DocumentURL      string `json:"document_url,omitempty"`
}

// BatchStatus enumerates procurement batch progress.
type BatchStatus string

const (
	BatchPending           BatchStatus = "pending"
	BatchPartiallyReceived BatchStatus = "partially_received"
	BatchReceived          BatchStatus = "received"
	BatchCommissioned      BatchStatus = "commissioned"
)

// BatchItemType says what a batch procures.
type BatchItemType string

const (
	BatchItemAsset   BatchItemType = "asset"
	BatchItemLicense BatchItemType = "license"
)

// ProcurementBatch pairs an ordered quantity with what was actually received.
type ProcurementBatch struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	PO          *PurchaseOrder `json:"po,omitempty"`
	DN          *DeliveryNote  `json:"dn,omitempty"`
	Minutes     *WardMinutes   `json:"minutes,omitempty"`
	OrderedQty  int            `json:"ordered_qty"`
	ReceivedQty int            `json:"received_qty"`
	ItemType    BatchItemType  `json:"item_type"`
	Status      BatchStatus    `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	History     []HistoryEvent `json:"history"`
}

// Discrepancy is ordered minus received; non-zero means reconciliation is due.
func (b ProcurementBatch) Discrepancy() int { return b.OrderedQty - b.ReceivedQty }

// NeedsReconciliation reports whether the batch has a quantity shortfall or excess.
func (b ProcurementBatch) NeedsReconciliation() bool { return b.Discrepancy() != 0 }

// UserStatus enumerates account states for the reference user list.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Privilege is a fine-grained capability referenced by roles.
type Privilege struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Role groups privileges by id.
type Role struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Privileges []string `json:"privileges"`
}

// UserGroup binds a set of users to one role.
type UserGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RoleID      string `json:"role_id"`
}

// User is reference data for permission display; no history is tracked.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Status     UserStatus `json:"status"`
	GroupID    string     `json:"group_id"`
	Department string     `json:"department"`
	Location   string     `json:"location"`
}
