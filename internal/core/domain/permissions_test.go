package domain

import "testing"

func TestAllows(t *testing.T) {
	tests := []struct {
		perm   string
		action Action
		want   bool
	}{
		{PermNone, ActionRead, false},
		{PermUnauthorized, ActionRead, false},
		{PermUnauthorized, ActionWrite, false},
		{PermUnauthorized, ActionDelete, false},
		{PermRead, ActionRead, true},
		{PermRead, ActionWrite, false},
		{PermReadWrite, ActionRead, true},
		{PermReadWrite, ActionWrite, true},
		{PermReadWrite, ActionDelete, false},
		{PermReadWriteDelete, ActionRead, true},
		{PermReadWriteDelete, ActionWrite, true},
		{PermReadWriteDelete, ActionDelete, true},
	}
	for _, tt := range tests {
		if got := Allows(tt.perm, tt.action); got != tt.want {
			t.Errorf("Allows(%q, %q) = %v, want %v", tt.perm, tt.action, got, tt.want)
		}
	}
}

func TestPermissionMapAllowsMissingDomain(t *testing.T) {
	p := PermissionMap{DomainItems: PermReadWrite}
	if !p.Allows(DomainItems, ActionWrite) {
		t.Error("expected write on items")
	}
	if p.Allows(DomainLogs, ActionRead) {
		t.Error("missing domain must grant nothing")
	}
}

func TestDefaultPermissions(t *testing.T) {
	p := DefaultPermissions()
	if len(p) != len(AllDomains) {
		t.Fatalf("default map covers %d domains, want %d", len(p), len(AllDomains))
	}
	if p.Allows(DomainLogs, ActionRead) || p.Allows(DomainUsers, ActionRead) {
		t.Error("logs and users must be unauthorized by default")
	}
	if !p.Allows(DomainItems, ActionRead) {
		t.Error("items must be readable by default")
	}
	if p.Allows(DomainItems, ActionWrite) {
		t.Error("default map must not grant writes")
	}
}

func TestFullPermissions(t *testing.T) {
	p := FullPermissions()
	for _, d := range AllDomains {
		for _, a := range []Action{ActionRead, ActionWrite, ActionDelete} {
			if !p.Allows(d, a) {
				t.Errorf("full map missing %q on %s", a, d)
			}
		}
	}
}

func TestValidPermission(t *testing.T) {
	for _, s := range []string{PermNone, PermUnauthorized, PermRead, PermReadWrite, PermReadWriteDelete} {
		if !ValidPermission(s) {
			t.Errorf("ValidPermission(%q) = false", s)
		}
	}
	for _, s := range []string{"W", "R&D", "rwd", "ADMIN"} {
		if ValidPermission(s) {
			t.Errorf("ValidPermission(%q) = true", s)
		}
	}
}
