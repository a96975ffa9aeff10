package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventar.org/internal/ids"
)

// Collection names a keyed collection inside the state tree.
type Collection string

const (
	CollectionAssets      Collection = "assets"
	CollectionLicenses    Collection = "master_licenses"
	CollectionSeats       Collection = "license_seats"
	CollectionAccessories Collection = "accessories"
	CollectionComponents  Collection = "components"
	CollectionBatches     Collection = "procurement_batches"
	CollectionDepartments Collection = "departments"
	CollectionLocations   Collection = "locations"
	CollectionAssetTypes  Collection = "asset_types"
	CollectionUsers       Collection = "users"
	CollectionGroups      Collection = "groups"
	CollectionRoles       Collection = "roles"
)

// Action classifies a committed change for observers.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionReplace Action = "replace"
)

// Change describes one committed mutation. EntityID is empty for
// whole-collection replacements.
type Change struct {
	Collection Collection
	Action     Action
	EntityID   string
	At         time.Time
}

// Store is the single authoritative writer over the inventory state. Each
// dispatched command is applied to a clone of the committed tree and the
// clone replaces it atomically, so concurrent readers always observe a fully
// consistent snapshot.
type Store struct {
	mu         sync.RWMutex
	state      State
	now        func() time.Time
	newID      func() string
	newEventID func() string
	observers  []func(Change)
}

// Option configures Store construction.
type Option func(*Store)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithIDFunc overrides entity id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithEventIDFunc overrides history event id generation.
func WithEventIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newEventID = fn
		}
	}
}

// WithObserver registers fn to receive every committed change.
func WithObserver(fn func(Change)) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithInitialState seeds the store with a starting tree.
func WithInitialState(state State) Option {
	return func(s *Store) { s.state = state.clone() }
}

// NewStore constructs an empty store with ULID entity ids and UUID event ids
// unless overridden.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:      NewState(),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      ids.New,
		newEventID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the committed state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Dispatch applies cmd and returns the resulting snapshot. A command that
// references a missing entity id is a no-op: the unchanged snapshot comes
// back and no history event or change notification is produced.
func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	snap, _ := s.DispatchChanges(ctx, cmd)
	return snap
}

// DispatchChanges is Dispatch plus the list of committed changes, which is
// empty exactly when the command was a no-op.
func (s *Store) DispatchChanges(_ context.Context, cmd Command) (State, []Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &mutation{
		state:      s.state.clone(),
		now:        s.now(),
		newID:      s.newID,
		newEventID: s.newEventID,
	}
	m.apply(cmd)

	if len(m.changes) == 0 {
		return s.state.clone(), nil
	}

	s.state = m.state
	for _, change := range m.changes {
		for _, fn := range s.observers {
			fn(change)
		}
	}
	return s.state.clone(), m.changes
}

// mutation holds the working clone for one command application.
type mutation struct {
	state      State
	now        time.Time
	newID      func() string
	newEventID func() string
	changes    []Change
}

func (m *mutation) record(c Collection, a Action, id string) {
	m.changes = append(m.changes, Change{Collection: c, Action: a, EntityID: id, At: m.now})
}

func (m *mutation) event(entityID string, t EventType, desc, from, to string) HistoryEvent {
	return HistoryEvent{
		ID:          m.newEventID(),
		EntityID:    entityID,
		Date:        m.now,
		Type:        t,
		Description: desc,
		ChangedFrom: from,
		ChangedTo:   to,
	}
}

func (m *mutation) apply(cmd Command) {
	switch cmd.Kind {
	case KindSetAssets:
		m.setAssets(cmd.Assets)
	case KindAddAsset:
		if cmd.Asset != nil {
			m.addAsset(*cmd.Asset)
		}
	case KindUpdateAsset:
		if cmd.Asset != nil {
			m.updateAsset(*cmd.Asset)
		}
	case KindDeleteAsset:
		m.deleteAsset(cmd.ID)

	case KindSetLicenses:
		m.setLicenses(cmd.Licenses)
	case KindAddLicense:
		if cmd.License != nil {
			m.addLicense(*cmd.License, cmd.Seats)
		}
	case KindUpdateLicense:
		if cmd.License != nil {
			m.updateLicense(*cmd.License)
		}
	case KindDeleteLicense:
		m.deleteLicense(cmd.ID)
	case KindUpdateSeat:
		if cmd.Seat != nil {
			m.updateSeat(*cmd.Seat)
		}

	case KindSetAccessories:
		m.setAccessories(cmd.Accessories)
	case KindAddAccessory:
		if cmd.Accessory != nil {
			m.addAccessory(*cmd.Accessory)
		}
	case KindUpdateAccessory:
		if cmd.Accessory != nil {
			m.updateAccessory(*cmd.Accessory)
		}
	case KindDeleteAccessory:
		m.deleteAccessory(cmd.ID)
	case KindCheckoutAccessory:
		m.moveAccessoryStock(cmd.ID, 1)
	case KindCheckinAccessory:
		m.moveAccessoryStock(cmd.ID, -1)

	case KindSetComponents:
		m.setComponents(cmd.Components)
	case KindAddComponent:
		if cmd.Component != nil {
			m.addComponent(*cmd.Component)
		}
	case KindUpdateComponent:
		if cmd.Component != nil {
			m.updateComponent(*cmd.Component)
		}
	case KindDeleteComponent:
		m.deleteComponent(cmd.ID)
	case KindCheckoutComponent:
		m.moveComponentStock(cmd.ID, -1)
	case KindCheckinComponent:
		m.moveComponentStock(cmd.ID, 1)

	case KindSetProcurement:
		m.setProcurement(cmd.Batches)
	case KindAddBatch:
		if cmd.Batch != nil {
			m.addBatch(*cmd.Batch)
		}
	case KindUpdateBatch:
		if cmd.Batch != nil {
			m.updateBatch(*cmd.Batch)
		}
	case KindDeleteBatch:
		m.deleteBatch(cmd.ID)

	case KindSetDepartments:
		m.state.Departments = append([]string(nil), cmd.List...)
		m.record(CollectionDepartments, ActionReplace, "")
	case KindSetLocations:
		m.state.Locations = append([]string(nil), cmd.List...)
		m.record(CollectionLocations, ActionReplace, "")
	case KindSetAssetTypes:
		m.state.AssetTypes = append([]string(nil), cmd.List...)
		m.record(CollectionAssetTypes, ActionReplace, "")

	case KindSetUsers:
		m.setUsers(cmd.Users)
	case KindAddUser:
		if cmd.User != nil {
			m.addUser(*cmd.User)
		}
	case KindUpdateUser:
		if cmd.User != nil {
			m.updateUser(*cmd.User)
		}
	case KindDeleteUser:
		m.deleteReference(CollectionUsers, cmd.ID)

	case KindSetGroups:
		m.setGroups(cmd.Groups)
	case KindAddGroup:
		if cmd.Group != nil {
			m.addGroup(*cmd.Group)
		}
	case KindUpdateGroup:
		if cmd.Group != nil {
			m.updateGroup(*cmd.Group)
		}
	case KindDeleteGroup:
		m.deleteReference(CollectionGroups, cmd.ID)

	case KindSetRoles:
		m.setRoles(cmd.Roles)
	case KindAddRole:
		if cmd.Role != nil {
			m.addRole(*cmd.Role)
		}
	case KindUpdateRole:
		if cmd.Role != nil {
			m.updateRole(*cmd.Role)
		}
	case KindDeleteRole:
		m.deleteReference(CollectionRoles, cmd.ID)
	}
	// Unknown kinds fall through as no-ops.
}

// Asset commands ------------------------------------------------------------

func (m *mutation) setAssets(assets []Asset) {
	m.state.Assets = make(map[string]Asset, len(assets))
	for _, a := range assets {
		m.state.Assets[a.ID] = cloneAsset(a)
	}
	m.record(CollectionAssets, ActionReplace, "")
}

func (m *mutation) addAsset(a Asset) {
	if a.ID == "" {
		a.ID = m.newID()
	}
	a = cloneAsset(a)
	a.History = append(a.History, m.event(a.ID, EventCreation, "Asset created", "", a.Assignee))
	m.state.Assets[a.ID] = a
	m.record(CollectionAssets, ActionCreate, a.ID)

	// Claim the requested seats, each at most once regardless of how many
	// times the list names it. Seat ids not present in the collection are
	// silently ignored.
	claimed := make(map[string]struct{}, len(a.AssignedLicenses))
	for _, seatID := range a.AssignedLicenses {
		if _, done := claimed[seatID]; done {
			continue
		}
		seat, ok := m.state.LicenseSeats[seatID]
		if !ok {
			continue
		}
		claimed[seatID] = struct{}{}
		m.claimSeat(seat, a.ID, "Assigned to new asset: "+a.Name, a.Name)
	}
}

func (m *mutation) updateAsset(next Asset) {
	old, ok := m.state.Assets[next.ID]
	if !ok {
		return
	}

	var events []HistoryEvent
	if old.Assignee != next.Assignee {
		events = append(events, m.event(old.ID, EventAssignment, "Asset reassigned", old.Assignee, next.Assignee))
	}
	if old.Status != next.Status {
		events = append(events, m.event(old.ID, EventStatus, "Status changed to "+string(next.Status), string(old.Status), string(next.Status)))
	}

	updated := cloneAsset(next)
	// History is append-only: carry the prior log forward regardless of what
	// the payload claims, then add the derived events.
	updated.History = append(cloneHistory(old.History), events...)
	m.state.Assets[next.ID] = updated
	m.record(CollectionAssets, ActionUpdate, next.ID)

	m.reconcileSeats(old, updated)
}

func (m *mutation) deleteAsset(id string) {
	if _, ok := m.state.Assets[id]; !ok {
		return
	}
	// Seats pointing at the asset keep their assignment.
	delete(m.state.Assets, id)
	m.record(CollectionAssets, ActionDelete, id)
}

// License commands ----------------------------------------------------------

func (m *mutation) setLicenses(ls []MasterLicense) {
	m.state.MasterLicenses = make(map[string]MasterLicense, len(ls))
	for _, l := range ls {
		m.state.MasterLicenses[l.ID] = cloneLicense(l)
	}
	m.record(CollectionLicenses, ActionReplace, "")
}

func (m *mutation) addLicense(l MasterLicense, seats []LicenseSeat) {
	if l.ID == "" {
		l.ID = m.newID()
	}
	l = cloneLicense(l)
	m.state.MasterLicenses[l.ID] = l
	m.record(CollectionLicenses, ActionCreate, l.ID)

	for _, seat := range seats {
		seat = cloneSeat(seat)
		if seat.ID == "" {
			seat.ID = m.newID()
		}
		seat.MasterLicenseID = l.ID
		if seat.Status == "" {
			seat.Status = SeatAvailable
		}
		if seat.AssignedToType == "" {
			seat.AssignedToType = AssignedToNone
		}
		m.state.LicenseSeats[seat.ID] = seat
		m.record(CollectionSeats, ActionCreate, seat.ID)
	}
}

func (m *mutation) updateLicense(next MasterLicense) {
	old, ok := m.state.MasterLicenses[next.ID]
	if !ok {
		return
	}
	updated := cloneLicense(next)
	updated.History = cloneHistory(old.History)
	m.state.MasterLicenses[next.ID] = updated
	m.record(CollectionLicenses, ActionUpdate, next.ID)
}

func (m *mutation) deleteLicense(id string) {
	if _, ok := m.state.MasterLicenses[id]; !ok {
		return
	}
	// Cascade: master and every dependent seat leave in the same transition.
	// Assets keep whatever seat ids they listed.
	delete(m.state.MasterLicenses, id)
	m.record(CollectionLicenses, ActionDelete, id)
	for seatID, seat := range m.state.LicenseSeats {
		if seat.MasterLicenseID == id {
			delete(m.state.LicenseSeats, seatID)
			m.record(CollectionSeats, ActionDelete, seatID)
		}
	}
}

func (m *mutation) updateSeat(next LicenseSeat) {
	old, ok := m.state.LicenseSeats[next.ID]
	if !ok {
		return
	}
	desc := "Seat unassigned"
	if next.Status == SeatAssigned {
		desc = "Seat assigned"
	}
	evt := m.event(next.ID, EventAssignment, desc, orNone(old.AssignedToID), orNone(next.AssignedToID))

	updated := cloneSeat(next)
	updated.History = append(cloneHistory(old.History), evt)
	m.state.LicenseSeats[next.ID] = updated
	m.record(CollectionSeats, ActionUpdate, next.ID)
}

// Accessory commands --------------------------------------------------------

func (m *mutation) setAccessories(as []Accessory) {
	m.state.Accessories = make(map[string]Accessory, len(as))
	for _, a := range as {
		m.state.Accessories[a.ID] = cloneAccessory(a)
	}
	m.record(CollectionAccessories, ActionReplace, "")
}

func (m *mutation) addAccessory(a Accessory) {
	if a.ID == "" {
		a.ID = m.newID()
	}
	m.state.Accessories[a.ID] = cloneAccessory(a)
	m.record(CollectionAccessories, ActionCreate, a.ID)
}

func (m *mutation) updateAccessory(next Accessory) {
	old, ok := m.state.Accessories[next.ID]
	if !ok {
		return
	}
	// No automatic history for bulk-tracked entities; existing manual entries
	// are carried forward untouched.
	updated := cloneAccessory(next)
	updated.History = cloneHistory(old.History)
	m.state.Accessories[next.ID] = updated
	m.record(CollectionAccessories, ActionUpdate, next.ID)
}

func (m *mutation) deleteAccessory(id string) {
	if _, ok := m.state.Accessories[id]; !ok {
		return
	}
	delete(m.state.Accessories, id)
	m.record(CollectionAccessories, ActionDelete, id)
}

// moveAccessoryStock shifts the checked-out counter by delta. Bounds are the
// caller's responsibility; the store applies the move as-is.
func (m *mutation) moveAccessoryStock(id string, delta int) {
	acc, ok := m.state.Accessories[id]
	if !ok {
		return
	}
	updated := cloneAccessory(acc)
	updated.CheckedOutQty += delta
	m.state.Accessories[id] = updated
	m.record(CollectionAccessories, ActionUpdate, id)
}

// Component commands --------------------------------------------------------

func (m *mutation) setComponents(cs []HardwareComponent) {
	m.state.Components = make(map[string]HardwareComponent, len(cs))
	for _, c := range cs {
		m.state.Components[c.ID] = cloneComponent(c)
	}
	m.record(CollectionComponents, ActionReplace, "")
}

func (m *mutation) addComponent(c HardwareComponent) {
	if c.ID == "" {
		c.ID = m.newID()
	}
	m.state.Components[c.ID] = cloneComponent(c)
	m.record(CollectionComponents, ActionCreate, c.ID)
}

func (m *mutation) updateComponent(next HardwareComponent) {
	old, ok := m.state.Components[next.ID]
	if !ok {
		return
	}
	updated := cloneComponent(next)
	updated.History = cloneHistory(old.History)
	m.state.Components[next.ID] = updated
	m.record(CollectionComponents, ActionUpdate, next.ID)
}

func (m *mutation) deleteComponent(id string) {
	if _, ok := m.state.Components[id]; !ok {
		return
	}
	delete(m.state.Components, id)
	m.record(CollectionComponents, ActionDelete, id)
}

// moveComponentStock shifts the remaining counter by delta. Checkout consumes
// stock (negative delta), checkin restores it.
func (m *mutation) moveComponentStock(id string, delta int) {
	comp, ok := m.state.Components[id]
	if !ok {
		return
	}
	updated := cloneComponent(comp)
	updated.RemainingQty += delta
	m.state.Components[id] = updated
	m.record(CollectionComponents, ActionUpdate, id)
}

// Procurement commands ------------------------------------------------------

func (m *mutation) setProcurement(bs []ProcurementBatch) {
	m.state.ProcurementBatches = make(map[string]ProcurementBatch, len(bs))
	for _, b := range bs {
		m.state.ProcurementBatches[b.ID] = cloneBatch(b)
	}
	m.record(CollectionBatches, ActionReplace, "")
}

func (m *mutation) addBatch(b ProcurementBatch) {
	if b.ID == "" {
		b.ID = m.newID()
	}
	m.state.ProcurementBatches[b.ID] = cloneBatch(b)
	m.record(CollectionBatches, ActionCreate, b.ID)
}

func (m *mutation) updateBatch(next ProcurementBatch) {
	old, ok := m.state.ProcurementBatches[next.ID]
	if !ok {
		return
	}
	updated := cloneBatch(next)
	updated.History = cloneHistory(old.History)
	m.state.ProcurementBatches[next.ID] = updated
	m.record(CollectionBatches, ActionUpdate, next.ID)
}

func (m *mutation) deleteBatch(id string) {
	if _, ok := m.state.ProcurementBatches[id]; !ok {
		return
	}
	delete(m.state.ProcurementBatches, id)
	m.record(CollectionBatches, ActionDelete, id)
}

// Reference data commands ---------------------------------------------------

func (m *mutation) setUsers(us []User) {
	m.state.Users = make(map[string]User, len(us))
	for _, u := range us {
		m.state.Users[u.ID] = u
	}
	m.record(CollectionUsers, ActionReplace, "")
}

func (m *mutation) addUser(u User) {
	if u.ID == "" {
		u.ID = m.newID()
	}
	m.state.Users[u.ID] = u
	m.record(CollectionUsers, ActionCreate, u.ID)
}

func (m *mutation) updateUser(u User) {
	if _, ok := m.state.Users[u.ID]; !ok {
		return
	}
	m.state.Users[u.ID] = u
	m.record(CollectionUsers, ActionUpdate, u.ID)
}

func (m *mutation) setGroups(gs []UserGroup) {
	m.state.Groups = make(map[string]UserGroup, len(gs))
	for _, g := range gs {
		m.state.Groups[g.ID] = g
	}
	m.record(CollectionGroups, ActionReplace, "")
}

func (m *mutation) addGroup(g UserGroup) {
	if g.ID == "" {
		g.ID = m.newID()
	}
	m.state.Groups[g.ID] = g
	m.record(CollectionGroups, ActionCreate, g.ID)
}

func (m *mutation) updateGroup(g UserGroup) {
	if _, ok := m.state.Groups[g.ID]; !ok {
		return
	}
	m.state.Groups[g.ID] = g
	m.record(CollectionGroups, ActionUpdate, g.ID)
}

func (m *mutation) setRoles(rs []Role) {
	m.state.Roles = make(map[string]Role, len(rs))
	for _, r := range rs {
		m.state.Roles[r.ID] = cloneRole(r)
	}
	m.record(CollectionRoles, ActionReplace, "")
}

func (m *mutation) addRole(r Role) {
	if r.ID == "" {
		r.ID = m.newID()
	}
	m.state.Roles[r.ID] = cloneRole(r)
	m.record(CollectionRoles, ActionCreate, r.ID)
}

func (m *mutation) updateRole(r Role) {
	if _, ok := m.state.Roles[r.ID]; !ok {
		return
	}
	m.state.Roles[r.ID] = cloneRole(r)
	m.record(CollectionRoles, ActionUpdate, r.ID)
}

func (m *mutation) deleteReference(c Collection, id string) {
	switch c {
	case CollectionUsers:
		if _, ok := m.state.Users[id]; !ok {
			return
		}
		delete(m.state.Users, id)
	case CollectionGroups:
		if _, ok := m.state.Groups[id]; !ok {
			return
		}
		delete(m.state.Groups, id)
	case CollectionRoles:
		if _, ok := m.state.Roles[id]; !ok {
			return
		}
		delete(m.state.Roles, id)
	default:
		return
	}
	m.record(c, ActionDelete, id)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
