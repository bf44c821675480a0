package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photofolio/shared"
)

func TestResolveOwner(t *testing.T) {
	folder := &shared.Folder{ID: "3", OwnerID: "5"}
	entry := &shared.SharedFolder{ID: "3", Permission: shared.PermissionRead}

	assert.Equal(t, Unrestricted, Resolve(folder, "5", nil))
	assert.Equal(t, Unrestricted, Resolve(folder, "5", entry))
	assert.Equal(t, Unrestricted, Resolve(nil, "5", nil))
	assert.Equal(t, Unrestricted, Resolve(&shared.Folder{}, "5", nil))
}

func TestResolveShared(t *testing.T) {
	folder := &shared.Folder{ID: "3", OwnerID: "9"}

	for permission, want := range map[shared.Permission]Capability{
		shared.PermissionRead:   Read,
		shared.PermissionWrite:  Write,
		shared.PermissionDelete: Delete,
		"admin":                 None,
	} {
		entry := &shared.SharedFolder{ID: "3", Permission: permission}
		assert.Equal(t, want, Resolve(folder, "5", entry), permission)
	}

	assert.Equal(t, None, Resolve(folder, "5", nil))
	assert.Equal(t, None, Resolve(folder, "5", &shared.SharedFolder{
		ID:         "4",
		Permission: shared.PermissionDelete,
	}))
}

func TestResolveWithoutUser(t *testing.T) {
	folder := &shared.Folder{ID: "3"}
	assert.Equal(t, None, Resolve(folder, shared.HomeID, nil))
}

func TestWriteGrantee(t *testing.T) {
	folder := &shared.Folder{ID: "3", OwnerID: "9"}
	entry := &shared.SharedFolder{ID: "3", Permission: shared.PermissionWrite}

	c := Resolve(folder, "5", entry)
	assert.True(t, CanUpload(c))
	assert.False(t, CanDeleteImage(c))
	assert.False(t, CanChangePermissions(c))
}

func TestTiers(t *testing.T) {
	levels := []Capability{None, Read, Write, Delete, Unrestricted}
	for i, has := range levels {
		for j, required := range levels {
			assert.Equal(t, i >= j, Satisfies(has, required))
		}
	}

	assert.False(t, CanView(None))
	assert.True(t, CanView(Read))
	assert.False(t, CanUpload(Read))
	assert.True(t, CanUpload(Write))
	assert.True(t, CanUpload(Delete))
	assert.True(t, CanUpload(Unrestricted))
	assert.False(t, CanDeleteImage(Delete))
	assert.True(t, CanDeleteImage(Unrestricted))
	assert.True(t, CanChangePermissions(Delete))
	assert.True(t, CanChangePermissions(Unrestricted))
}

func TestString(t *testing.T) {
	assert.Equal(t, "owner", Unrestricted.String())
	assert.Equal(t, "write", Write.String())
	assert.Equal(t, "unknown", Capability(42).String())
}
