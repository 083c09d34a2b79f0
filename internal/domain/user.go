package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleSupplier UserRole = "supplier"
	RoleAdmin    UserRole = "admin"
	RoleBoth     UserRole = "both"
)

// CanBuy reports whether the role may act as a customer.
func (r UserRole) CanBuy() bool {
	return r == RoleCustomer || r == RoleBoth
}

// CanSell reports whether the role may act as a supplier.
func (r UserRole) CanSell() bool {
	return r == RoleSupplier || r == RoleBoth
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserDisabled UserStatus = "disabled"
	UserPending  UserStatus = "pending"
)

type User struct {
	ID          string
	Name        string
	Surname     string
	Email       string
	PhoneNumber string
	Role        UserRole
	Status      UserStatus

	// Business profile, filled for suppliers only.
	BusinessName        string
	BusinessCategory    string
	BusinessDescription string
	BusinessEmail       string
	BusinessPhoneNumber string

	// Opaque file-storage references, never interpreted by the core.
	PersonalImagePath string
	BusinessImagePath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
