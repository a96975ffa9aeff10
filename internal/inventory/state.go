package inventory

// State is the full inventory tree: keyed entity collections plus the
// reference lists the dashboard renders. The store commits by replacing the
// whole tree, so any State handed out is a self-contained snapshot.
type State struct {
	Assets             map[string]Asset
	MasterLicenses     map[string]MasterLicense
	LicenseSeats       map[string]LicenseSeat
	Accessories        map[string]Accessory
	Components         map[string]HardwareComponent
	ProcurementBatches map[string]ProcurementBatch

	Departments []string
	Locations   []string
	AssetTypes  []string

	Users      map[string]User
	Groups     map[string]UserGroup
	Roles      map[string]Role
	Privileges map[string]Privilege
}

// NewState returns an empty state with all collections allocated.
func NewState() State {
	return State{
		Assets:             make(map[string]Asset),
		MasterLicenses:     make(map[string]MasterLicense),
		LicenseSeats:       make(map[string]LicenseSeat),
		Accessories:        make(map[string]Accessory),
		Components:         make(map[string]HardwareComponent),
		ProcurementBatches: make(map[string]ProcurementBatch),
		Users:              make(map[string]User),
		Groups:             make(map[string]UserGroup),
		Roles:              make(map[string]Role),
		Privileges:         make(map[string]Privilege),
	}
}

func (s State) clone() State {
	cloned := NewState()
	for k, v := range s.Assets {
		cloned.Assets[k] = cloneAsset(v)
	}
	for k, v := range s.MasterLicenses {
		cloned.MasterLicenses[k] = cloneLicense(v)
	}
	for k, v := range s.LicenseSeats {
		cloned.LicenseSeats[k] = cloneSeat(v)
	}
	for k, v := range s.Accessories {
		cloned.Accessories[k] = cloneAccessory(v)
	}
	for k, v := range s.Components {
		cloned.Components[k] = cloneComponent(v)
	}
	for k, v := range s.ProcurementBatches {
		cloned.ProcurementBatches[k] = cloneBatch(v)
	}
	cloned.Departments = append([]string(nil), s.Departments...)
	cloned.Locations = append([]string(nil), s.Locations...)
	cloned.AssetTypes = append([]string(nil), s.AssetTypes...)
	for k, v := range s.Users {
		cloned.Users[k] = v
	}
	for k, v := range s.Groups {
		cloned.Groups[k] = v
	}
	for k, v := range s.Roles {
		cloned.Roles[k] = cloneRole(v)
	}
	for k, v := range s.Privileges {
		cloned.Privileges[k] = v
	}
	return cloned
}

func cloneHistory(h []HistoryEvent) []HistoryEvent {
	out := make([]HistoryEvent, len(h))
	copy(out, h)
	return out
}

func cloneAsset(a Asset) Asset {
	cp := a
	cp.History = cloneHistory(a.History)
	cp.AssignedLicenses = append([]string(nil), a.AssignedLicenses...)
	if cp.AssignedLicenses == nil {
		cp.AssignedLicenses = []string{}
	}
	return cp
}

func cloneLicense(l MasterLicense) MasterLicense {
	cp := l
	cp.History = cloneHistory(l.History)
	return cp
}

func cloneSeat(s LicenseSeat) LicenseSeat {
	cp := s
	cp.History = cloneHistory(s.History)
	return cp
}

func cloneAccessory(a Accessory) Accessory {
	cp := a
	cp.History = cloneHistory(a.History)
	return cp
}

func cloneComponent(c HardwareComponent) HardwareComponent {
	cp := c
	cp.History = cloneHistory(c.History)
	return cp
}

func cloneBatch(b ProcurementBatch) ProcurementBatch {
	cp := b
	cp.History = cloneHistory(b.History)
	if b.PO != nil {
		po := *b.PO
		cp.PO = &po
	}
	if b.DN != nil {
		dn := *b.DN
		cp.DN = &dn
	}
	if b.Minutes != nil {
		m := *b.Minutes
		cp.Minutes = &m
	}
	return cp
}

func cloneRole(r Role) Role {
	cp := r
	cp.Privileges = append([]string(nil), r.Privileges...)
	return cp
}
