// Package roles holds the static role → capability table for the staff
// panel. Authorization is a lookup here, not string comparisons scattered
// across screens.
package roles

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleKitchen  Role = "kitchen"
	RoleDelivery Role = "delivery"

	// RoleManager is offered by the login screen but carries no capabilities
	// of its own: it resolves to the admin set.
	RoleManager Role = "manager"
)

// Routes shared by every authenticated role.
var commonRoutes = []string{"/settings", "/change-password"}

var routeTable = map[Role][]string{
	RoleAdmin:    {"/", "/orders", "/menu", "/analytics", "/staff-management"},
	RoleKitchen:  {"/", "/staff"},
	RoleDelivery: {"/", "/delivery"},
}

var defaultRoutes = map[Role]string{
	RoleAdmin:    "/",
	RoleKitchen:  "/staff",
	RoleDelivery: "/delivery",
}

// Canonical maps UI role names onto the session role model.
func Canonical(r Role) Role {
	if r == RoleManager {
		return RoleAdmin
	}
	return r
}

// Known reports whether the role exists in the session model after aliasing.
func Known(r Role) bool {
	_, ok := routeTable[Canonical(r)]
	return ok
}

// Routes returns every route reachable by the role.
func Routes(r Role) []string {
	base, ok := routeTable[Canonical(r)]
	if !ok {
		return nil
	}
	routes := make([]string, 0, len(base)+len(commonRoutes))
	routes = append(routes, base...)
	routes = append(routes, commonRoutes...)
	return routes
}

// CanAccess reports whether the role may open the route. Callers redirect to
// DefaultRoute when it returns false.
func CanAccess(r Role, route string) bool {
	for _, allowed := range Routes(r) {
		if allowed == route {
			return true
		}
	}
	return false
}

// DefaultRoute is where the role lands after login or a denied navigation.
func DefaultRoute(r Role) string {
	if route, ok := defaultRoutes[Canonical(r)]; ok {
		return route
	}
	return "/"
}
