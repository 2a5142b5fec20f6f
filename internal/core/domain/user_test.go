package domain

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Foo@Bar.com ", "foo@bar.com"},
		{"  JOE@EXAMPLE.COM", "joe@example.com"},
		{"already@lower.com", "already@lower.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotence.
		if got := NormalizeEmail(NormalizeEmail(tt.in)); got != tt.want {
			t.Fatalf("NormalizeEmail not idempotent for %q", tt.in)
		}
	}
}

func TestUser_Redacted(t *testing.T) {
	u := &User{ID: "u1", Email: "a@b.com", PasswordHash: "$2a$10$abc"}
	r := u.Redacted()
	if r.PasswordHash != "" {
		t.Fatalf("Redacted kept the hash")
	}
	if u.PasswordHash == "" {
		t.Fatalf("Redacted mutated the original")
	}
	if r.ID != u.ID || r.Email != u.Email {
		t.Fatalf("Redacted dropped fields: %+v", r)
	}
}

func TestAccessLevel(t *testing.T) {
	if !AccessOwner.Valid() || !AccessMaintainer.Valid() || !AccessDeveloper.Valid() {
		t.Fatalf("enumerated levels must be valid")
	}
	if AccessLevel(99).Valid() {
		t.Fatalf("arbitrary level must be invalid")
	}
	if AccessOwner.String() != "owner" {
		t.Fatalf("unexpected name: %s", AccessOwner.String())
	}
}
