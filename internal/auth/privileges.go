package auth

import "inventar.org/internal/inventory"

// Privilege keys referenced by roles in the snapshot's reference data.
const (
	PrivAssetsView   = "assets.view"
	PrivAssetsCreate = "assets.create"
	PrivAssetsEdit   = "assets.edit"
	PrivAssetsDelete = "assets.delete"
	PrivUsersView    = "users.view"
	PrivUsersManage  = "users.manage"
	PrivReportsView  = "reports.view"
)

// BuiltinPrivileges is the catalog seeded into a fresh state tree.
var BuiltinPrivileges = []inventory.Privilege{
	{ID: "p1", Name: PrivAssetsView, Description: "Can view assets"},
	{ID: "p2", Name: PrivAssetsCreate, Description: "Can create assets"},
	{ID: "p3", Name: PrivAssetsEdit, Description: "Can edit assets"},
	{ID: "p4", Name: PrivAssetsDelete, Description: "Can delete assets"},
	{ID: "p5", Name: PrivUsersView, Description: "Can view users"},
	{ID: "p6", Name: PrivUsersManage, Description: "Can manage users, roles, and groups"},
	{ID: "p7", Name: PrivReportsView, Description: "Can view and export reports"},
}
