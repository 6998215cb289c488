// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Roles

// Role is the authorization level carried in a token.
type Role string

const (
	// RoleStaff may add books and purge the catalog.
	RoleStaff Role = "staff"

	// RoleCustomer may only browse and buy. Anonymous requests act as customers.
	RoleCustomer Role = "customer"
)

// CanManageInventory reports whether r may call the staff routes.
func (r Role) CanManageInventory() bool {
	return r == RoleStaff
}
