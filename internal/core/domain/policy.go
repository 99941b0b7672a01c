package domain

// Authorization policy as pure predicates over (actor, target). They are
// deliberately independent of transport and persistence so routes never
// re-derive role logic.

// CanListAllUsers reports whether actor may enumerate the directory.
// Admin only.
func CanListAllUsers(actor *User) bool {
	return actor != nil && actor.Role == RoleAdmin
}

// CanViewUser reports whether actor may read the record identified by
// targetID. An inactive actor is denied before the self-or-admin rule: a
// blocked account cannot browse anything, including itself.
func CanViewUser(actor *User, targetID string) bool {
	if actor == nil || actor.Status == StatusInactive {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == targetID
}

// CanChangeStatus reports whether actor may block or unblock the record
// identified by targetID. Self-or-admin.
func CanChangeStatus(actor *User, targetID string) bool {
	if actor == nil {
		return false
	}
	return actor.Role == RoleAdmin || actor.ID == targetID
}
