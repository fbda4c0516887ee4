package access

import "gallery-app/internal/domain/users"

// OwnerOrAdmin is the resource-level authorization rule: a caller may
// mutate a resource iff they are an admin or the resource's owner.
func OwnerOrAdmin(ownerID, callerID int64, callerRole string) bool {
	return callerRole == users.RoleAdmin || callerID == ownerID
}

// CanCreateArtwork is a pure role check, independent of any existing
// resource.
func CanCreateArtwork(role string) bool {
	return role == users.RoleArtist || role == users.RoleAdmin
}
