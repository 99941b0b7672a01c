package domain

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestCanListAllUsers(t *testing.T) {
	admin := &User{ID: "a", Role: RoleAdmin, Status: StatusActive}
	regular := &User{ID: "b", Role: RoleUser, Status: StatusActive}

	if !CanListAllUsers(admin) {
		t.Fatalf("admin should be able to list users")
	}
	if CanListAllUsers(regular) {
		t.Fatalf("regular user should not be able to list users")
	}
	if CanListAllUsers(nil) {
		t.Fatalf("nil actor should not be able to list users")
	}
}

func TestCanViewUser_InactiveActorDeniedEvenForSelf(t *testing.T) {
	actor := &User{ID: "a", Role: RoleUser, Status: StatusInactive}
	if CanViewUser(actor, "a") {
		t.Fatalf("inactive actor should not view anything, including itself")
	}

	inactiveAdmin := &User{ID: "a", Role: RoleAdmin, Status: StatusInactive}
	if CanViewUser(inactiveAdmin, "b") {
		t.Fatalf("inactive admin should not view anything")
	}
}

// Property check over random role/status/id combinations: view permission is
// exactly "actor active AND (admin OR self)".
func TestCanViewUser_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roles := []string{RoleAdmin, RoleUser}
	statuses := []string{StatusActive, StatusInactive}

	for i := 0; i < 2000; i++ {
		actor := &User{
			ID:     fmt.Sprintf("user_%d", rng.Intn(5)),
			Role:   roles[rng.Intn(len(roles))],
			Status: statuses[rng.Intn(len(statuses))],
		}
		target := fmt.Sprintf("user_%d", rng.Intn(5))

		want := actor.Status == StatusActive &&
			(actor.Role == RoleAdmin || actor.ID == target)

		if got := CanViewUser(actor, target); got != want {
			t.Fatalf("CanViewUser(%+v, %q) = %v, want %v", actor, target, got, want)
		}
	}
}

func TestCanChangeStatus(t *testing.T) {
	admin := &User{ID: "a", Role: RoleAdmin, Status: StatusActive}
	regular := &User{ID: "b", Role: RoleUser, Status: StatusActive}

	if !CanChangeStatus(admin, "anyone") {
		t.Fatalf("admin should change any status")
	}
	if !CanChangeStatus(regular, "b") {
		t.Fatalf("user should change own status")
	}
	if CanChangeStatus(regular, "a") {
		t.Fatalf("user should not change another user's status")
	}
	if CanChangeStatus(nil, "a") {
		t.Fatalf("nil actor should not change anything")
	}
}

func TestValidID(t *testing.T) {
	valid := "507f1f77bcf86cd799439011"
	if !ValidID(valid) {
		t.Fatalf("expected %q to be valid", valid)
	}

	for _, bad := range []string{
		"",
		"invalid-id",
		"507f1f77bcf86cd79943901",              // 23 chars
		"507f1f77bcf86cd7994390111",            // 25 chars
		"507f1f77bcf86cd79943901g",             // non-hex
		"507F1F77BCF86CD79943901 ",             // trailing space
		"....................,,,,",             // punctuation
	} {
		if ValidID(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}

	if !ValidID("507F1F77BCF86CD799439011") {
		t.Fatalf("uppercase hex should be accepted")
	}
}

func TestValidStatusAndRole(t *testing.T) {
	if !ValidStatus(StatusActive) || !ValidStatus(StatusInactive) {
		t.Fatalf("enumerated statuses should be valid")
	}
	if ValidStatus("frozen") || ValidStatus("") {
		t.Fatalf("unknown statuses should be invalid")
	}
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("enumerated roles should be valid")
	}
	if ValidRole("superuser") {
		t.Fatalf("unknown roles should be invalid")
	}
}
