package domain

import "strings"

// Permission domains. These are the units of access control granularity:
// each user carries a map from domain to a permission string.
const (
	DomainItems     = "items"
	DomainOrders    = "orders"
	DomainReturns   = "returns"
	DomainSuppliers = "suppliers"
	DomainLogs      = "logs"
	DomainArchives  = "archives"
	DomainUsers     = "users"
)

// AllDomains lists every permission domain
var AllDomains = []string{
	DomainItems,
	DomainOrders,
	DomainReturns,
	DomainSuppliers,
	DomainLogs,
	DomainArchives,
	DomainUsers,
}

// Action represents a permission action on a domain
type Action string

// Permission actions
const (
	ActionRead   Action = "R"
	ActionWrite  Action = "W"
	ActionDelete Action = "D"
)

// Permission string encoding. Permissions are monotonic: Delete implies
// Write implies Read. "U" marks an unauthorized domain and is treated the
// same as an empty string.
const (
	PermNone            = ""
	PermUnauthorized    = "U"
	PermRead            = "R"
	PermReadWrite       = "R&W"
	PermReadWriteDelete = "R&W&D"
)

// User roles
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// PermissionMap maps a permission domain to its encoded permission string
type PermissionMap map[string]string

// DefaultPermissions returns the permission map granted to a new
// regular user when none is supplied.
func DefaultPermissions() PermissionMap {
	return PermissionMap{
		DomainItems:     PermRead,
		DomainOrders:    PermRead,
		DomainReturns:   PermRead,
		DomainSuppliers: PermRead,
		DomainLogs:      PermUnauthorized,
		DomainArchives:  PermRead,
		DomainUsers:     PermUnauthorized,
	}
}

// FullPermissions returns read/write/delete on every domain. Admins are
// granted this map at creation time.
func FullPermissions() PermissionMap {
	perms := make(PermissionMap, len(AllDomains))
	for _, d := range AllDomains {
		perms[d] = PermReadWriteDelete
	}
	return perms
}

// ValidPermission reports whether s is one of the four encoded states
// (with "U" accepted as an alias for the empty string).
func ValidPermission(s string) bool {
	switch s {
	case PermNone, PermUnauthorized, PermRead, PermReadWrite, PermReadWriteDelete:
		return true
	}
	return false
}

// Allows reports whether a permission string grants an action. The
// encoding is flag-based ("R&W&D"), so membership is a substring check on
// the flag letter; "U" never grants anything.
func Allows(perm string, action Action) bool {
	if perm == PermUnauthorized {
		return false
	}
	return strings.Contains(perm, string(action))
}

// Allows reports whether the map grants an action on a domain. A missing
// domain entry grants nothing.
func (p PermissionMap) Allows(domain string, action Action) bool {
	return Allows(p[domain], action)
}
