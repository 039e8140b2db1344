// Package permissions is the single source of truth for role-based access:
// both the route guard and the navigation endpoint consult the same tables,
// so link visibility and route access cannot drift apart.
package permissions

import "fleet-service/internal/model"

// Permission is the capability set derived from a role. It is recomputed on
// demand and never stored.
type Permission struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
	CanView   bool `json:"canView"`
}

var rolePermissions = map[model.Role]Permission{
	model.RoleAdmin:        {CanCreate: true, CanEdit: true, CanDelete: true, CanView: true},
	model.RoleFleetManager: {CanCreate: true, CanEdit: true, CanDelete: false, CanView: true},
	model.RoleDriver:       {CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
}

// Resolve maps a role to its capability set. An empty or unknown role gets
// no capabilities.
func Resolve(role model.Role) Permission {
	return rolePermissions[role]
}

// Routes the application knows about. Admin and fleet_manager access is
// computed (everything, everything-but-admin), so only the driver role needs
// an explicit allow-list.
var (
	allRoutes = []string{"/dashboard", "/vehicles", "/drivers", "/maintenance", "/admin"}

	driverRoutes = map[string]bool{
		"/dashboard":   true,
		"/vehicles":    true,
		"/maintenance": true,
	}
)

// CanAccessRoute reports whether a role may access a logical route path.
func CanAccessRoute(role model.Role, path string) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleFleetManager:
		return path != "/admin"
	case model.RoleDriver:
		return driverRoutes[path]
	}
	return false
}

// AccessibleRoutes returns the routes a role may visit, in navigation order.
// The navigation renderer must use this rather than its own role table.
func AccessibleRoutes(role model.Role) []string {
	routes := make([]string, 0, len(allRoutes))
	for _, path := range allRoutes {
		if CanAccessRoute(role, path) {
			routes = append(routes, path)
		}
	}
	return routes
}
