package inventory

// Seat reconciliation: the derived side effects of asset mutations on license
// seats. Only the asset-update and asset-create paths call into here.

// claimSeat points a seat at an asset and appends the assignment event.
func (m *mutation) claimSeat(seat LicenseSeat, assetID, description, assetName string) {
	updated := cloneSeat(seat)
	updated.Status = SeatAssigned
	updated.AssignedToType = AssignedToAsset
	updated.AssignedToID = assetID
	updated.History = append(updated.History, m.event(seat.ID, EventAssignment, description, "", assetName))
	m.state.LicenseSeats[seat.ID] = updated
	m.record(CollectionSeats, ActionUpdate, seat.ID)
}

// releaseSeat frees a seat previously held by an asset.
func (m *mutation) releaseSeat(seat LicenseSeat, previousAssetName string) {
	updated := cloneSeat(seat)
	updated.Status = SeatAvailable
	updated.AssignedToType = AssignedToNone
	updated.AssignedToID = ""
	updated.History = append(updated.History, m.event(seat.ID, EventAssignment, "Unassigned due to asset update", previousAssetName, ""))
	m.state.LicenseSeats[seat.ID] = updated
	m.record(CollectionSeats, ActionUpdate, seat.ID)
}

// reconcileSeats diffs an asset's requested seat list against the seats that
// currently point at it: seats dropped from the list are released, seats
// newly listed are claimed, and everything else keeps its history untouched.
func (m *mutation) reconcileSeats(old, updated Asset) {
	wanted := make(map[string]struct{}, len(updated.AssignedLicenses))
	for _, id := range updated.AssignedLicenses {
		wanted[id] = struct{}{}
	}

	for id, seat := range m.state.LicenseSeats {
		_, keep := wanted[id]
		switch {
		case seat.AssignedToID == updated.ID && !keep:
			m.releaseSeat(seat, old.Name)
		case keep && seat.AssignedToID != updated.ID:
			m.claimSeat(seat, updated.ID, "Assigned to asset: "+updated.Name, updated.Name)
		}
	}
}
