package inventory

// Kind discriminates the command union handled by Store.Dispatch.
type Kind string

const (
	KindSetAssets   Kind = "set_assets"
	KindAddAsset    Kind = "add_asset"
	KindUpdateAsset Kind = "update_asset"
	KindDeleteAsset Kind = "delete_asset"

	KindSetLicenses   Kind = "set_licenses"
	KindAddLicense    Kind = "add_license"
	KindUpdateLicense Kind = "update_license"
	KindDeleteLicense Kind = "delete_license"
	KindUpdateSeat    Kind = "update_seat"

	KindSetAccessories    Kind = "set_accessories"
	KindAddAccessory      Kind = "add_accessory"
	KindUpdateAccessory   Kind = "update_accessory"
	KindDeleteAccessory   Kind = "delete_accessory"
	KindCheckoutAccessory Kind = "checkout_accessory"
	KindCheckinAccessory  Kind = "checkin_accessory"

	KindSetComponents     Kind = "set_components"
	KindAddComponent      Kind = "add_component"
	KindUpdateComponent   Kind = "update_component"
	KindDeleteComponent   Kind = "delete_component"
	KindCheckoutComponent Kind = "checkout_component"
	KindCheckinComponent  Kind = "checkin_component"

	KindSetProcurement Kind = "set_procurement"
	KindAddBatch       Kind = "add_batch"
	KindUpdateBatch    Kind = "update_batch"
	KindDeleteBatch    Kind = "delete_batch"

	KindSetDepartments Kind = "set_departments"
	KindSetLocations   Kind = "set_locations"
	KindSetAssetTypes  Kind = "set_asset_types"

	KindSetUsers   Kind = "set_users"
	KindAddUser    Kind = "add_user"
	KindUpdateUser Kind = "update_user"
	KindDeleteUser Kind = "delete_user"

	KindSetGroups   Kind = "set_groups"
	KindAddGroup    Kind = "add_group"
	KindUpdateGroup Kind = "update_group"
	KindDeleteGroup Kind = "delete_group"

	KindSetRoles   Kind = "set_roles"
	KindAddRole    Kind = "add_role"
	KindUpdateRole Kind = "update_role"
	KindDeleteRole Kind = "delete_role"
)

// Command is a mutation intent against one conceptual collection. Only the
// payload fields relevant to Kind are set; everything else stays zero.
type Command struct {
	Kind Kind

	ID string

	Asset  *Asset
	Assets []Asset

	License  *MasterLicense
	Licenses []MasterLicense
	Seat     *LicenseSeat
	Seats    []LicenseSeat

	Accessory   *Accessory
	Accessories []Accessory

	Component  *HardwareComponent
	Components []HardwareComponent

	Batch   *ProcurementBatch
	Batches []ProcurementBatch

	List []string

	User  *User
	Users []User

	Group  *UserGroup
	Groups []UserGroup

	Role  *Role
	Roles []Role
}

// Constructors keep dispatch call sites terse and payload shapes honest.

func SetAssets(assets []Asset) Command {
	return Command{Kind: KindSetAssets, Assets: assets}
}

func AddAsset(a Asset) Command {
	return Command{Kind: KindAddAsset, Asset: &a}
}

func UpdateAsset(a Asset) Command {
	return Command{Kind: KindUpdateAsset, Asset: &a}
}

func DeleteAsset(id string) Command {
	return Command{Kind: KindDeleteAsset, ID: id}
}

func SetLicenses(ls []MasterLicense) Command {
	return Command{Kind: KindSetLicenses, Licenses: ls}
}

// AddLicense inserts a master license together with its initial seats in one
// atomic transition.
func AddLicense(l MasterLicense, seats []LicenseSeat) Command {
	return Command{Kind: KindAddLicense, License: &l, Seats: seats}
}

func UpdateLicense(l MasterLicense) Command {
	return Command{Kind: KindUpdateLicense, License: &l}
}

func DeleteLicense(id string) Command {
	return Command{Kind: KindDeleteLicense, ID: id}
}

func UpdateSeat(s LicenseSeat) Command {
	return Command{Kind: KindUpdateSeat, Seat: &s}
}

func SetAccessories(as []Accessory) Command {
	return Command{Kind: KindSetAccessories, Accessories: as}
}

func AddAccessory(a Accessory) Command {
	return Command{Kind: KindAddAccessory, Accessory: &a}
}

func UpdateAccessory(a Accessory) Command {
	return Command{Kind: KindUpdateAccessory, Accessory: &a}
}

func DeleteAccessory(id string) Command {
	return Command{Kind: KindDeleteAccessory, ID: id}
}

// CheckoutAccessory and CheckinAccessory move exactly one unit. The store does
// not re-validate the bounds; callers guard before dispatching.
func CheckoutAccessory(id string) Command {
	return Command{Kind: KindCheckoutAccessory, ID: id}
}

func CheckinAccessory(id string) Command {
	return Command{Kind: KindCheckinAccessory, ID: id}
}

func SetComponents(cs []HardwareComponent) Command {
	return Command{Kind: KindSetComponents, Components: cs}
}

func AddComponent(c HardwareComponent) Command {
	return Command{Kind: KindAddComponent, Component: &c}
}

func UpdateComponent(c HardwareComponent) Command {
	return Command{Kind: KindUpdateComponent, Component: &c}
}

func DeleteComponent(id string) Command {
	return Command{Kind: KindDeleteComponent, ID: id}
}

func CheckoutComponent(id string) Command {
	return Command{Kind: KindCheckoutComponent, ID: id}
}

func CheckinComponent(id string) Command {
	return Command{Kind: KindCheckinComponent, ID: id}
}

func SetProcurement(bs []ProcurementBatch) Command {
	return Command{Kind: KindSetProcurement, Batches: bs}
}

func AddBatch(b ProcurementBatch) Command {
	return Command{Kind: KindAddBatch, Batch: &b}
}

func UpdateBatch(b ProcurementBatch) Command {
	return Command{Kind: KindUpdateBatch, Batch: &b}
}

func DeleteBatch(id string) Command {
	return Command{Kind: KindDeleteBatch, ID: id}
}

func SetDepartments(items []string) Command {
	return Command{Kind: KindSetDepartments, List: items}
}

func SetLocations(items []string) Command {
	return Command{Kind: KindSetLocations, List: items}
}

func SetAssetTypes(items []string) Command {
	return Command{Kind: KindSetAssetTypes, List: items}
}

func SetUsers(us []User) Command {
	return Command{Kind: KindSetUsers, Users: us}
}

func AddUser(u User) Command {
	return Command{Kind: KindAddUser, User: &u}
}

func UpdateUser(u User) Command {
	return Command{Kind: KindUpdateUser, User: &u}
}

func DeleteUser(id string) Command {
	return Command{Kind: KindDeleteUser, ID: id}
}

func SetGroups(gs []UserGroup) Command {
	return Command{Kind: KindSetGroups, Groups: gs}
}

func AddGroup(g UserGroup) Command {
	return Command{Kind: KindAddGroup, Group: &g}
}

func UpdateGroup(g UserGroup) Command {
	return Command{Kind: KindUpdateGroup, Group: &g}
}

func DeleteGroup(id string) Command {
	return Command{Kind: KindDeleteGroup, ID: id}
}

func SetRoles(rs []Role) Command {
	return Command{Kind: KindSetRoles, Roles: rs}
}

func AddRole(r Role) Command {
	return Command{Kind: KindAddRole, Role: &r}
}

func UpdateRole(r Role) Command {
	return Command{Kind: KindUpdateRole, Role: &r}
}

func DeleteRole(id string) Command {
	return Command{Kind: KindDeleteRole, ID: id}
}
