package domain

// AccountRole is the directory-level role label attached to a managed user
// account. These labels are free text in the source domain and deliberately
// not reconciled with SessionRole.
type AccountRole string

const (
	AccountRoleAdministrator AccountRole = "Administrator"
	AccountRoleManager       AccountRole = "Manager"
	AccountRoleStaff         AccountRole = "Staff"
)

// AccountStatus is the lifecycle state of a directory account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// UserAccount is a manageable directory entry. IDs are generated with a "U"
// prefix and are unique within the directory; the directory preserves
// insertion order.
type UserAccount struct {
	ID     string        `json:"id" bson:"_id"`
	Name   string        `json:"name" bson:"name"`
	Email  string        `json:"email" bson:"email"`
	Role   AccountRole   `json:"role" bson:"role"`
	Status AccountStatus `json:"status" bson:"status"`
}

// RolePermission describes what a directory role may do. The catalogue is
// static reference data rendered alongside user management.
type RolePermission struct {
	Role        AccountRole `json:"role"`
	Description string      `json:"description"`
}

// RolePermissions returns the static role permission catalogue.
func RolePermissions() []RolePermission {
	return []RolePermission{
		{
			Role:        AccountRoleAdministrator,
			Description: "Full access to all modules including system settings, user management, and data deletion",
		},
		{
			Role:        AccountRoleManager,
			Description: "Can manage employees, partners, upload data, and generate reports. Cannot access system settings",
		},
		{
			Role:        AccountRoleStaff,
			Description: "Can view data and basic reports. Cannot modify employee records or upload data",
		},
	}
}
