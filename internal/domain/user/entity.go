package user

// Role enum
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleDriver  Role = "driver"
	RoleRenter  Role = "renter"
)

// User - driver or back-office account
type User struct {
	ID           int
	Name         string
	Email        string
	Contact      *string
	Role         Role
	PasswordHash string
	CompanyID    *int

	// Joined fields
	CompanyName *string
}
