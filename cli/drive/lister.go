package drive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const imageQuery = "mimeType contains 'image/' and trashed = false"
const folderQuery = "mimeType = 'application/vnd.google-apps.folder' and trashed = false"

// ImageRef is a Drive file that can be imported as an image.
type ImageRef struct {
	ID            string
	Name          string
	ThumbnailLink string
}

type FolderRef struct {
	ID   string
	Name string
}

// Lister reads the user's Drive.
type Lister interface {
	ListImages(ctx context.Context, pageSize int64) ([]ImageRef, error)
	ListFolders(ctx context.Context, pageSize int64) ([]FolderRef, error)
	Email(ctx context.Context) (string, error)
}

type driveLister struct {
	srv *drive.Service
}

// NewLister returns a Lister authorized with a Drive access token. Extra
// options are applied after the token source.
func NewLister(ctx context.Context, token string, opts ...option.ClientOption) (Lister, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})

	opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to create client: %w", ErrProvider, err)
	}

	return &driveLister{srv: srv}, nil
}

func (l *driveLister) ListImages(ctx context.Context, pageSize int64) ([]ImageRef, error) {
	list, err := l.srv.Files.List().
		Q(imageQuery).
		Fields("files(id, name, thumbnailLink)").
		PageSize(pageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: listing images: %w", ErrProvider, err)
	}

	refs := make([]ImageRef, 0, len(list.Files))
	for _, file := range list.Files {
		refs = append(refs, ImageRef{
			ID:            file.Id,
			Name:          file.Name,
			ThumbnailLink: file.ThumbnailLink,
		})
	}

	return refs, nil
}

func (l *driveLister) ListFolders(ctx context.Context, pageSize int64) ([]FolderRef, error) {
	list, err := l.srv.Files.List().
		Q(folderQuery).
		Fields("files(id, name)").
		PageSize(pageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: listing folders: %w", ErrProvider, err)
	}

	refs := make([]FolderRef, 0, len(list.Files))
	for _, file := range list.Files {
		refs = append(refs, FolderRef{ID: file.Id, Name: file.Name})
	}

	return refs, nil
}

func (l *driveLister) Email(ctx context.Context) (string, error) {
	about, err := l.srv.About.Get().
		Fields("user(emailAddress)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: reading account: %w", ErrProvider, err)
	} else if about.User == nil {
		return "", fmt.Errorf("%w: account has no user", ErrProvider)
	}

	return about.User.EmailAddress, nil
}
