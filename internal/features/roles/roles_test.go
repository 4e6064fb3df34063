package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	assert.Equal(t, RoleAdmin, Canonical(RoleManager))
	assert.Equal(t, RoleAdmin, Canonical(RoleAdmin))
	assert.Equal(t, RoleKitchen, Canonical(RoleKitchen))
	assert.Equal(t, Role("ghost"), Canonical(Role("ghost")))
}

func TestKnown(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleKitchen, RoleDelivery, RoleManager} {
		assert.True(t, Known(r), "role %s", r)
	}
	assert.False(t, Known(Role("superuser")))
	assert.False(t, Known(Role("")))
}

func TestCanAccess(t *testing.T) {
	cases := []struct {
		role  Role
		route string
		want  bool
	}{
		{RoleAdmin, "/orders", true},
		{RoleAdmin, "/staff-management", true},
		{RoleAdmin, "/delivery", false},
		{RoleManager, "/analytics", true},
		{RoleKitchen, "/staff", true},
		{RoleKitchen, "/menu", false},
		{RoleDelivery, "/delivery", true},
		{RoleDelivery, "/orders", false},
		{Role("ghost"), "/", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanAccess(tc.role, tc.route), "%s %s", tc.role, tc.route)
	}

	// Settings and password change are reachable for every real role.
	for _, r := range []Role{RoleAdmin, RoleKitchen, RoleDelivery, RoleManager} {
		assert.True(t, CanAccess(r, "/settings"), "role %s", r)
		assert.True(t, CanAccess(r, "/change-password"), "role %s", r)
	}
}

func TestDefaultRoute(t *testing.T) {
	assert.Equal(t, "/", DefaultRoute(RoleAdmin))
	assert.Equal(t, "/", DefaultRoute(RoleManager))
	assert.Equal(t, "/staff", DefaultRoute(RoleKitchen))
	assert.Equal(t, "/delivery", DefaultRoute(RoleDelivery))
	assert.Equal(t, "/", DefaultRoute(Role("ghost")))
}
