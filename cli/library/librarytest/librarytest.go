// Package librarytest provides an in-memory library.Backend for tests.
package librarytest

import (
	"context"
	"fmt"
	"io"
	"sync"

	"photofolio/cli/library"
	"photofolio/cli/session"
	"photofolio/shared"
)

// Backend serves a fixed home and records every change sent to it.
type Backend struct {
	mu sync.Mutex

	Home    shared.HomeResponse
	Shared  []shared.SharedFolder
	Images  map[shared.ID][]shared.ImageItem
	Err     error
	Reject  map[string]error
	Created []shared.Folder
	Deleted []shared.ID
	Sent    []string

	next int
}

func (b *Backend) FetchHome(context.Context) (shared.HomeResponse, error) {
	return b.Home, b.Err
}

func (b *Backend) FetchSharedFolders(context.Context) ([]shared.SharedFolder, error) {
	return b.Shared, b.Err
}

func (b *Backend) CreateFolder(_ context.Context, name string, parent shared.ID) (shared.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return shared.Folder{}, b.Err
	}

	b.next++
	folder := shared.Folder{
		ID:          shared.ID(fmt.Sprintf("f%d", b.next)),
		Name:        name,
		Parent:      parent,
		AllowUpload: true,
	}
	b.Created = append(b.Created, folder)
	return folder, nil
}

func (b *Backend) DeleteFolder(_ context.Context, id shared.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}

	b.Deleted = append(b.Deleted, id)
	return nil
}

func (b *Backend) FetchFolderImages(_ context.Context, id shared.ID) ([]shared.ImageItem, error) {
	return b.Images[id], b.Err
}

func (b *Backend) DeleteImage(_ context.Context, _, imageID shared.ID) error {
	return b.DeleteFolder(context.Background(), imageID)
}

func (b *Backend) UploadImage(
	_ context.Context,
	folderID shared.ID,
	name string,
	r io.Reader,
) (shared.ImageItem, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return shared.ImageItem{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.Sent = append(b.Sent, name)
	if err := b.Reject[name]; err != nil {
		return shared.ImageItem{}, err
	}

	b.next++
	return shared.ImageItem{
		ID:       shared.ID(fmt.Sprintf("i%d", b.next)),
		Name:     name,
		URL:      "http://img.test/" + name,
		FolderID: folderID,
	}, nil
}

// NewLibrary returns a library for user 1 backed by b.
func NewLibrary(b *Backend) *library.Library {
	s := &session.Session{}
	s.Start(shared.User{ID: "1", Email: "me@example.com"}, "token")
	return library.New(b, s, 0, nil)
}
