// Package sharing stages and submits the grant list of a folder.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"photofolio/cli/logging"
	"photofolio/shared"
)

var (
	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidPermission = errors.New("invalid permission")
	ErrDuplicateGrantee  = errors.New("email is already in the list")
	ErrNoGrantees        = errors.New("add at least one email before sharing")
	ErrOutOfRange        = errors.New("no grantee at that position")
)

// Submitter sends a complete grant list for a folder to the backend.
type Submitter interface {
	ChangePermission(ctx context.Context, folderID shared.ID, permissions shared.PermissionSet) error
}

type Grantee struct {
	Email      string
	Permission shared.Permission
}

// Manager keeps the grantees staged for one folder until they are
// submitted. Submitting replaces every grant the folder had before.
type Manager struct {
	FolderID shared.ID

	// OnSubmitted is called after the backend accepted a grant list.
	OnSubmitted func(folderID shared.ID, permissions shared.PermissionSet)

	submitter Submitter
	staged    []Grantee
	err       error
	log       *zap.Logger
}

func NewManager(folderID shared.ID, submitter Submitter, log *zap.Logger) *Manager {
	return &Manager{
		FolderID:  folderID,
		submitter: submitter,
		log:       logging.OrNop(log),
	}
}

// AddGrantee stages the trimmed email with permission. The address is sent
// as typed; duplicates are found ignoring case and leave the list unchanged.
func (m *Manager) AddGrantee(email string, permission shared.Permission) error {
	email = strings.TrimSpace(email)
	if len(email) == 0 {
		return ErrEmptyEmail
	} else if !permission.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPermission, permission)
	}

	if m.Contains(email) {
		m.log.Debug("duplicate grantee rejected", zap.String("email", email))
		return fmt.Errorf("%w: %s", ErrDuplicateGrantee, email)
	}

	m.staged = append(m.staged, Grantee{Email: email, Permission: permission})
	return nil
}

func (m *Manager) RemoveGrantee(index int) error {
	if index < 0 || index >= len(m.staged) {
		return ErrOutOfRange
	}

	m.staged = slices.Delete(m.staged, index, index+1)
	return nil
}

func (m *Manager) Contains(email string) bool {
	email = strings.TrimSpace(email)
	return slices.ContainsFunc(m.staged, func(g Grantee) bool {
		return strings.EqualFold(g.Email, email)
	})
}

func (m *Manager) Grantees() []Grantee {
	return slices.Clone(m.staged)
}

func (m *Manager) Len() int {
	return len(m.staged)
}

// Err returns the error of the last failed submit.
func (m *Manager) Err() error {
	return m.err
}

// PermissionSet splits the staged list into the three grant lists. Every
// grantee can read, write and delete grantees can write, and only delete
// grantees can delete.
func (m *Manager) PermissionSet() shared.PermissionSet {
	set := shared.PermissionSet{
		Read:   []string{},
		Write:  []string{},
		Delete: []string{},
	}

	for _, g := range m.staged {
		set.Read = append(set.Read, g.Email)
		switch g.Permission {
		case shared.PermissionDelete:
			set.Write = append(set.Write, g.Email)
			set.Delete = append(set.Delete, g.Email)
		case shared.PermissionWrite:
			set.Write = append(set.Write, g.Email)
		}
	}

	return set
}

// Submit sends the staged list as the folder's complete grant list. On
// failure the staged list is kept so the user can retry.
func (m *Manager) Submit(ctx context.Context) error {
	if len(m.staged) == 0 {
		return ErrNoGrantees
	}

	set := m.PermissionSet()
	if err := m.submitter.ChangePermission(ctx, m.FolderID, set); err != nil {
		m.err = err
		m.log.Error("changing folder permissions failed",
			zap.String("folder", m.FolderID.String()),
			zap.Error(err))
		return err
	}

	m.err = nil
	m.log.Info("folder permissions replaced",
		zap.String("folder", m.FolderID.String()),
		zap.Int("grantees", len(set.Read)))

	if m.OnSubmitted != nil {
		m.OnSubmitted(m.FolderID, set)
	}

	return nil
}
