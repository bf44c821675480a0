// Package library is the dashboard controller. It owns the folder tree and
// the image collection of the signed-in user and keeps them in step with the
// backend.
//
// Each change comes in steps: Check* reads local state, Send* and Fetch*
// only talk to the backend, and Apply* changes local state once the backend
// has confirmed. The terminal UI runs the Send and Fetch steps in the
// background and the others on its event loop. The combined helpers (Load,
// AddFolder, RemoveFolder, ...) run every step in order for synchronous
// callers.
package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"photofolio/cli/gallery"
	"photofolio/cli/hierarchy"
	"photofolio/cli/logging"
	"photofolio/cli/permission"
	"photofolio/cli/session"
	"photofolio/cli/utils"
	"photofolio/shared"
	"photofolio/shared/constants"
)

var (
	ErrEmptyFolderName = errors.New("folder name is empty")
	ErrForbidden       = errors.New("not allowed in this folder")
	ErrUnknownFolder   = errors.New("folder not found")
	ErrUnknownImage    = errors.New("image not found")
	ErrNoFolder        = errors.New("no folder selected")
	ErrImagesLoading   = errors.New("images are still loading")
)

// Backend is the part of the api used by the library.
type Backend interface {
	FetchHome(ctx context.Context) (shared.HomeResponse, error)
	FetchSharedFolders(ctx context.Context) ([]shared.SharedFolder, error)
	CreateFolder(ctx context.Context, name string, parent shared.ID) (shared.Folder, error)
	DeleteFolder(ctx context.Context, id shared.ID) error
	FetchFolderImages(ctx context.Context, folderID shared.ID) ([]shared.ImageItem, error)
	DeleteImage(ctx context.Context, folderID, imageID shared.ID) error
	UploadImage(ctx context.Context, folderID shared.ID, name string, r io.Reader) (shared.ImageItem, error)
}

type Library struct {
	Tree   *hierarchy.Tree
	Images *gallery.Collection

	backend   Backend
	session   *session.Session
	maxUpload int64
	log       *zap.Logger
}

// Snapshot is everything the dashboard shows right after login.
type Snapshot struct {
	Home   shared.HomeResponse
	Shared []shared.SharedFolder

	// SharedErr is set when the shared folders could not be fetched. The
	// previous shared list is kept in that case.
	SharedErr error
}

// Removal describes the local effect of a deleted folder.
type Removal struct {
	Folders []shared.ID
	Images  int

	// Reselected is true when the deleted subtree contained the selection,
	// which then falls back to home. Ticket belongs to that new selection.
	Reselected bool
	Ticket     gallery.Ticket
}

func New(backend Backend, s *session.Session, maxUpload int64, log *zap.Logger) *Library {
	if maxUpload <= 0 {
		maxUpload = constants.MaxImageSize
	}

	return &Library{
		Tree:      hierarchy.New(),
		Images:    gallery.NewCollection(),
		backend:   backend,
		session:   s,
		maxUpload: maxUpload,
		log:       logging.OrNop(log),
	}
}

func (l *Library) Session() *session.Session {
	return l.session
}

// FetchSnapshot loads the home view and the shared folders.
func (l *Library) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	home, err := l.backend.FetchHome(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{Home: home}
	snapshot.Shared, snapshot.SharedErr = l.backend.FetchSharedFolders(ctx)
	if snapshot.SharedErr != nil {
		l.log.Warn("fetching shared folders failed", zap.Error(snapshot.SharedErr))
	}

	return snapshot, nil
}

// ApplySnapshot replaces the folder tree. The home images are applied only if
// ticket is still the current selection.
func (l *Library) ApplySnapshot(ticket gallery.Ticket, snapshot Snapshot, err error) {
	if err != nil {
		l.Images.Resolve(ticket, nil, err)
		return
	}

	folders := make([]shared.Folder, 0, len(snapshot.Home.Folders))
	for _, folder := range snapshot.Home.Folders {
		folders = append(folders, l.normalize(folder))
	}

	l.Tree.Reset(folders)
	if snapshot.SharedErr == nil {
		l.Tree.SetShared(snapshot.Shared)
	}

	l.Images.Resolve(ticket, snapshot.Home.Images, nil)
	l.log.Debug("library loaded",
		zap.Int("folders", l.Tree.Len()),
		zap.Int("shared", len(l.Tree.Shared())),
		zap.Int("images", len(snapshot.Home.Images)))
}

// MaxUpload is the largest file accepted for upload.
func (l *Library) MaxUpload() int64 {
	return l.maxUpload
}

// Load selects home and fetches everything the dashboard shows.
func (l *Library) Load(ctx context.Context) error {
	ticket := l.Images.Begin(shared.HomeID)
	snapshot, err := l.FetchSnapshot(ctx)
	l.ApplySnapshot(ticket, snapshot, err)
	return err
}

// normalize fills the owner of folders listed in the user's own home, which
// the backend may leave out.
func (l *Library) normalize(folder shared.Folder) shared.Folder {
	if folder.OwnerID.IsHome() {
		folder.OwnerID = l.session.UserID()
	}

	return folder
}

// Folder returns the folder record for id, owned or shared.
func (l *Library) Folder(id shared.ID) (shared.Folder, bool) {
	if folder, ok := l.Tree.Get(id); ok {
		return folder, true
	} else if entry, ok := l.Tree.GetShared(id); ok {
		return entry.AsFolder(), true
	}

	return shared.Folder{}, false
}

// CapabilityOf resolves what the current user may do in folder id.
func (l *Library) CapabilityOf(id shared.ID) permission.Capability {
	if id.IsHome() {
		return permission.Resolve(nil, l.session.UserID(), nil)
	}

	if folder, ok := l.Tree.Get(id); ok {
		return permission.Resolve(&folder, l.session.UserID(), nil)
	} else if entry, ok := l.Tree.GetShared(id); ok {
		folder := entry.AsFolder()
		return permission.Resolve(&folder, l.session.UserID(), &entry)
	}

	return permission.None
}

// Capability resolves the current selection.
func (l *Library) Capability() permission.Capability {
	return l.CapabilityOf(l.Images.Selection())
}

// Selection returns the selected folder, false for home.
func (l *Library) Selection() (shared.Folder, bool) {
	id := l.Images.Selection()
	if id.IsHome() {
		return shared.Folder{}, false
	}

	return l.Folder(id)
}

// Select makes id the current selection and returns the ticket its images
// must be resolved with.
func (l *Library) Select(id shared.ID) (gallery.Ticket, error) {
	if !id.IsHome() {
		if _, ok := l.Folder(id); !ok {
			return gallery.Ticket{}, fmt.Errorf("%w: %s", ErrUnknownFolder, id)
		} else if !permission.CanView(l.CapabilityOf(id)) {
			return gallery.Ticket{}, ErrForbidden
		}
	}

	return l.Images.Begin(id), nil
}

// FetchImages loads the images of the ticket's selection.
func (l *Library) FetchImages(ctx context.Context, ticket gallery.Ticket) ([]shared.ImageItem, error) {
	if ticket.Selection.IsHome() {
		home, err := l.backend.FetchHome(ctx)
		if err != nil {
			return nil, err
		}

		return home.Images, nil
	}

	return l.backend.FetchFolderImages(ctx, ticket.Selection)
}

// ResolveImages applies a fetch result and reports whether it was current.
func (l *Library) ResolveImages(ticket gallery.Ticket, images []shared.ImageItem, err error) bool {
	applied := l.Images.Resolve(ticket, images, err)
	if !applied {
		l.log.Debug("dropped stale images",
			zap.String("folder", ticket.Selection.String()),
			zap.Uint64("generation", ticket.Generation))
		return false
	}

	if revoked(err) && l.Tree.RemoveShared(ticket.Selection) {
		l.log.Info("shared folder no longer accessible",
			zap.String("folder", ticket.Selection.String()))
	}

	return true
}

// Revoked reports whether id was a shared folder the user lost access to.
func (l *Library) Revoked(id shared.ID) bool {
	if id.IsHome() {
		return false
	} else if _, ok := l.Tree.Get(id); ok {
		return false
	}

	_, ok := l.Tree.GetShared(id)
	return !ok
}

func revoked(err error) bool {
	return utils.IsStatus(err, http.StatusForbidden) || utils.IsStatus(err, http.StatusNotFound)
}

// SelectAndLoad selects id and waits for its images.
func (l *Library) SelectAndLoad(ctx context.Context, id shared.ID) error {
	ticket, err := l.Select(id)
	if err != nil {
		return err
	}

	images, err := l.FetchImages(ctx, ticket)
	l.ResolveImages(ticket, images, err)
	return err
}

// CheckNewFolder validates a folder about to be created under parent and
// returns its trimmed name. A blank name is rejected without a request.
func (l *Library) CheckNewFolder(parent shared.ID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return "", ErrEmptyFolderName
	}

	if !parent.IsHome() {
		if _, ok := l.Tree.Get(parent); !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownFolder, parent)
		}
	}

	return name, nil
}

// CreateFolder asks the backend to create a folder named name under parent.
func (l *Library) CreateFolder(ctx context.Context, parent shared.ID, name string) (shared.Folder, error) {
	name, err := l.CheckNewFolder(parent, name)
	if err != nil {
		return shared.Folder{}, err
	}

	return l.SendNewFolder(ctx, parent, name)
}

// SendNewFolder creates a folder that passed CheckNewFolder.
func (l *Library) SendNewFolder(ctx context.Context, parent shared.ID, name string) (shared.Folder, error) {
	folder, err := l.backend.CreateFolder(ctx, name, parent)
	if err != nil {
		return shared.Folder{}, err
	}

	if folder.Parent.IsHome() && !parent.IsHome() {
		folder.Parent = parent
	}

	return folder, nil
}

// InsertFolder adds a folder confirmed by the backend to the tree.
func (l *Library) InsertFolder(folder shared.Folder) error {
	return l.Tree.Insert(l.normalize(folder))
}

func (l *Library) AddFolder(ctx context.Context, parent shared.ID, name string) (shared.Folder, error) {
	folder, err := l.CreateFolder(ctx, parent, name)
	if err != nil {
		return shared.Folder{}, err
	}

	folder = l.normalize(folder)
	if err = l.Tree.Insert(folder); err != nil {
		return shared.Folder{}, err
	}

	l.log.Info("folder created",
		zap.String("folder", folder.ID.String()),
		zap.String("parent", folder.Parent.String()))
	return folder, nil
}

// CheckFolderDeletion reports whether id is an owned folder.
func (l *Library) CheckFolderDeletion(id shared.ID) error {
	folder, ok := l.Tree.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFolder, id)
	} else if permission.Resolve(&folder, l.session.UserID(), nil) != permission.Unrestricted {
		return ErrForbidden
	}

	return nil
}

// DeleteFolder asks the backend to delete an owned folder. Nothing local
// changes.
func (l *Library) DeleteFolder(ctx context.Context, id shared.ID) error {
	if err := l.CheckFolderDeletion(id); err != nil {
		return err
	}

	return l.SendFolderDeletion(ctx, id)
}

func (l *Library) SendFolderDeletion(ctx context.Context, id shared.ID) error {
	return l.backend.DeleteFolder(ctx, id)
}

// ApplyFolderDeletion removes id, its descendants and their images.
func (l *Library) ApplyFolderDeletion(id shared.ID) Removal {
	ids := l.Tree.Descendants(id)
	if len(ids) == 0 {
		return Removal{}
	}

	l.Tree.Remove(ids)
	removal := Removal{
		Folders: ids,
		Images:  l.Images.RemoveInFolders(ids),
	}

	selection := l.Images.Selection()
	for _, removed := range ids {
		if removed == selection {
			removal.Reselected = true
			removal.Ticket = l.Images.Begin(shared.HomeID)
			break
		}
	}

	l.log.Info("folder deleted",
		zap.String("folder", id.String()),
		zap.Int("subtree", len(ids)),
		zap.Bool("reselected", removal.Reselected))
	return removal
}

// RemoveFolder deletes id on the backend, then locally. When the selection
// was inside the deleted subtree the home images are reloaded.
func (l *Library) RemoveFolder(ctx context.Context, id shared.ID) (Removal, error) {
	if err := l.DeleteFolder(ctx, id); err != nil {
		return Removal{}, err
	}

	removal := l.ApplyFolderDeletion(id)
	if removal.Reselected {
		images, err := l.FetchImages(ctx, removal.Ticket)
		l.ResolveImages(removal.Ticket, images, err)
	}

	return removal, nil
}

// CheckImageDeletion reports whether imageID may be deleted and returns the
// folder it is deleted from.
func (l *Library) CheckImageDeletion(imageID shared.ID) (shared.ID, error) {
	selection := l.Images.Selection()
	if selection.IsHome() {
		return shared.HomeID, ErrNoFolder
	} else if l.Images.Loading() {
		return shared.HomeID, ErrImagesLoading
	}

	image, ok := l.Images.Get(imageID)
	if !ok || (!image.FolderID.IsHome() && image.FolderID != selection) {
		return shared.HomeID, fmt.Errorf("%w: %s", ErrUnknownImage, imageID)
	} else if !permission.CanDeleteImage(l.CapabilityOf(selection)) {
		return shared.HomeID, ErrForbidden
	}

	return selection, nil
}

func (l *Library) SendImageDeletion(ctx context.Context, folderID, imageID shared.ID) error {
	return l.backend.DeleteImage(ctx, folderID, imageID)
}

// ApplyImageDeletion drops a deleted image from the collection.
func (l *Library) ApplyImageDeletion(imageID shared.ID) bool {
	return l.Images.Remove(imageID)
}

// ApplyImported adds images registered in folderID by an import. They are
// shown only if folderID is still selected.
func (l *Library) ApplyImported(folderID shared.ID, images []shared.ImageItem) int {
	if l.Images.Selection() != folderID || len(images) == 0 {
		return 0
	}

	l.Images.Append(images...)
	return len(images)
}

// ApplySyncedFolder keeps a folder created from a Drive folder.
func (l *Library) ApplySyncedFolder(folder shared.Folder) error {
	if err := l.CanSyncFolder(folder.Parent); err != nil {
		return err
	}

	return l.InsertFolder(folder)
}

// CanSyncFolder reports whether a Drive folder may be synced below parent.
// Synced folders join the owned tree, so parent must be home or owned.
func (l *Library) CanSyncFolder(parent shared.ID) error {
	if parent.IsHome() {
		return nil
	} else if _, ok := l.Tree.Get(parent); !ok {
		return ErrForbidden
	}

	return nil
}
