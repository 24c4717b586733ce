package entities

import "testing"

func TestActor_CanManageOrders(t *testing.T) {
	cases := []struct {
		name  string
		roles []Role
		want  bool
	}{
		{"admin", []Role{RoleAdmin}, true},
		{"mechanic", []Role{RoleMechanic}, true},
		{"customer", []Role{RoleCustomer}, false},
		{"no roles", nil, false},
		{"customer and mechanic", []Role{RoleCustomer, RoleMechanic}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Actor{ID: "u-1", Roles: tc.roles}
			if got := a.CanManageOrders(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestActor_OwnsCustomer(t *testing.T) {
	a := Actor{ID: "u-1", CustomerID: "cli-1", Roles: []Role{RoleCustomer}}

	if !a.OwnsCustomer("cli-1") {
		t.Fatalf("expected ownership of cli-1")
	}
	if a.OwnsCustomer("cli-2") {
		t.Fatalf("unexpected ownership of cli-2")
	}
	if a.OwnsCustomer("") {
		t.Fatalf("empty customer id must never match")
	}

	anon := Actor{ID: "u-2"}
	if anon.OwnsCustomer("cli-1") {
		t.Fatalf("actor without customer id must not own anything")
	}
}
