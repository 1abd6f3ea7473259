package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"ava@acme.com", "noah.carter@acme.co.uk", "mia+review@acme.io"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "ava", "ava@", "@acme.com", "ava@acme", "ava acme@acme.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidateRole(t *testing.T) {
	if !ValidateRole("reviewer") || !ValidateRole("reviewee") {
		t.Fatal("expected reviewer and reviewee to be valid roles")
	}
	for _, role := range []string{"", "admin", "Reviewer", "both"} {
		if ValidateRole(role) {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("got %q", got)
	}
}
