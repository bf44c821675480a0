// Package permission derives what the current user may do in a folder.
package permission

import (
	"photofolio/shared"
)

// Capability is the effective access a user holds over a folder. Each level
// allows everything the lower levels allow.
type Capability int

const (
	None Capability = iota
	Read
	Write
	Delete
	Unrestricted
)

var capabilityNames = map[Capability]string{
	None:         "none",
	Read:         "read",
	Write:        "write",
	Delete:       "delete",
	Unrestricted: "owner",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}

	return "unknown"
}

// FromPermission maps a granted permission to its capability. Unknown
// permissions grant nothing.
func FromPermission(p shared.Permission) Capability {
	switch p {
	case shared.PermissionRead:
		return Read
	case shared.PermissionWrite:
		return Write
	case shared.PermissionDelete:
		return Delete
	default:
		return None
	}
}

// Resolve returns the capability currentUser holds over folder. A nil folder
// is the home view, which always belongs to the current user. The owner is
// unrestricted regardless of any shared entry; otherwise the shared entry for
// the folder decides, and without one the folder is inaccessible.
func Resolve(folder *shared.Folder, currentUser shared.ID, entry *shared.SharedFolder) Capability {
	if folder == nil || folder.ID.IsHome() {
		return Unrestricted
	} else if !currentUser.IsHome() && folder.OwnerID == currentUser {
		return Unrestricted
	}

	if entry == nil || entry.ID != folder.ID {
		return None
	}

	return FromPermission(entry.Permission)
}

// Satisfies reports whether has covers required.
func Satisfies(has, required Capability) bool {
	return has >= required
}

func CanView(c Capability) bool {
	return Satisfies(c, Read)
}

func CanUpload(c Capability) bool {
	return Satisfies(c, Write)
}

// CanDeleteImage is reserved for the folder owner. A shared delete grant
// covers folder-level permission changes, not individual images.
func CanDeleteImage(c Capability) bool {
	return c == Unrestricted
}

func CanChangePermissions(c Capability) bool {
	return Satisfies(c, Delete)
}
