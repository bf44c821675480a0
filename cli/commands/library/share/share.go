package share

import (
	"fmt"
	"slices"
	"strings"

	"photofolio/cli/sharing"
	"photofolio/shared"
)

type Action int

const (
	Cancel Action = iota
	Add
	Remove
	Submit
)

var permLabels = map[shared.Permission]string{
	shared.PermissionRead:   "Read Only",
	shared.PermissionWrite:  "Read + Upload",
	shared.PermissionDelete: "Read + Upload + Delete",
}

func permLabel(p shared.Permission) string {
	if label, ok := permLabels[p]; ok {
		return label
	}

	return string(p)
}

// describeGrantees lists the staged grantees, one per line.
func describeGrantees(grantees []sharing.Grantee) string {
	if len(grantees) == 0 {
		return "No users added yet"
	}

	lines := make([]string, 0, len(grantees))
	for i, g := range grantees {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, g.Email, permLabel(g.Permission)))
	}

	return strings.Join(lines, "\n")
}

// actions are the choices offered for the current list.
func actions(staged int) []Action {
	if staged == 0 {
		return []Action{Add, Cancel}
	}

	return []Action{Add, Remove, Submit, Cancel}
}

func (a Action) String() string {
	switch a {
	case Add:
		return "Add User"
	case Remove:
		return "Remove User"
	case Submit:
		return "Share Folder"
	default:
		return "Return to Library"
	}
}

// removeIndices drops the grantees at the given positions. Positions refer
// to the list before any removal.
func removeIndices(manager *sharing.Manager, indices []int) {
	indices = slices.Clone(indices)
	slices.Sort(indices)
	for _, i := range slices.Backward(slices.Compact(indices)) {
		_ = manager.RemoveGrantee(i)
	}
}

// validateGrantee checks the email typed into the add form.
func validateGrantee(manager *sharing.Manager) func(string) error {
	return func(email string) error {
		if err := shared.ValidateEmail(email); err != nil {
			return err
		} else if manager.Contains(email) {
			return sharing.ErrDuplicateGrantee
		}

		return nil
	}
}
