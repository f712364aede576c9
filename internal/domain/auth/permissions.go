package auth

import "github.com/jezdibolt/backend-go/internal/domain/user"

// Permission names carried in the access token. Handlers check the
// claim instead of re-reading the role from the database.
const (
	PermViewImport    = "VIEW_IMPORT"
	PermEditImport    = "EDIT_IMPORT"
	PermViewEarnings  = "VIEW_EARNINGS"
	PermEditEarnings  = "EDIT_EARNINGS"
	PermViewPayConfig = "VIEW_PAY_CONFIG"
	PermEditPayConfig = "EDIT_PAY_CONFIG"
)

var rolePermissions = map[user.Role][]string{
	user.RoleOwner: {
		PermViewImport, PermEditImport,
		PermViewEarnings, PermEditEarnings,
		PermViewPayConfig, PermEditPayConfig,
	},
	user.RoleManager: {
		PermViewImport, PermEditImport,
		PermViewEarnings, PermEditEarnings,
		PermViewPayConfig,
	},
	user.RoleDriver: {PermViewEarnings},
	user.RoleRenter: {PermViewEarnings},
}

// PermissionsForRole returns a copy of the role's permission set.
func PermissionsForRole(role user.Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}
