package service

import "github.com/atinyakov/url-cutter/internal/storage"

// CanView decides whether caller may read a link's info and stats.
// Anonymous links are public; owned links are visible to their owner only.
func CanView(l *storage.Link, caller Identity) bool {
	if isSuperuser(caller) || l.UserID == nil {
		return true
	}
	uid, ok := UserIDOf(caller)
	return ok && l.OwnedBy(uid)
}

// CanMutate decides whether caller may update or delete a link.
// Links without an owner can only be changed by a superuser.
func CanMutate(l *storage.Link, caller Identity) bool {
	if isSuperuser(caller) {
		return true
	}
	uid, ok := UserIDOf(caller)
	return ok && l.OwnedBy(uid)
}

// CanSweep decides whether caller may purge expired links.
func CanSweep(caller Identity) bool {
	return isSuperuser(caller)
}
