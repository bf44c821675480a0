package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"photofolio/cli/permission"
	"photofolio/shared"
	"photofolio/shared/constants"
)

var (
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image is too large")
	ErrUploadClosed  = errors.New("folder does not accept uploads")
)

// UploadResult is the outcome of one file of an upload.
type UploadResult struct {
	Path  string
	Image shared.ImageItem
	Err   error
}

// CanUpload reports whether files may be uploaded into folderID.
func (l *Library) CanUpload(folderID shared.ID) error {
	if !permission.CanUpload(l.CapabilityOf(folderID)) {
		return ErrForbidden
	}

	if folder, ok := l.Folder(folderID); ok && !folder.AllowUpload {
		return ErrUploadClosed
	}

	return nil
}

// ValidateImage checks that path is an image no larger than the upload limit
// and returns its detected MIME type.
func (l *Library) ValidateImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	} else if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotAnImage, path)
	}

	if info.Size() > l.maxUpload {
		return "", fmt.Errorf("%w: %s is %s, the limit is %s",
			ErrImageTooLarge,
			filepath.Base(path),
			humanize.IBytes(uint64(info.Size())),
			humanize.IBytes(uint64(l.maxUpload)))
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: %s is %s", ErrNotAnImage, filepath.Base(path), mime.String())
	}

	return mime.String(), nil
}

// Upload sends every file in paths to folderID. The returned error is only
// set when nothing could be attempted.
func (l *Library) Upload(ctx context.Context, folderID shared.ID, paths []string) ([]UploadResult, error) {
	if err := l.CanUpload(folderID); err != nil {
		return nil, err
	}

	return l.SendUploads(ctx, folderID, paths), nil
}

// SendUploads uploads paths into a folder that passed CanUpload. Files that
// fail validation are not sent. The result for paths[i] is at index i
// regardless of the order in which uploads finish.
func (l *Library) SendUploads(ctx context.Context, folderID shared.ID, paths []string) []UploadResult {
	results := make([]UploadResult, len(paths))
	var group errgroup.Group
	group.SetLimit(constants.MaxConcurrentUploads)

	for i, path := range paths {
		results[i].Path = path
		if _, err := l.ValidateImage(path); err != nil {
			results[i].Err = err
			continue
		}

		group.Go(func() error {
			results[i].Image, results[i].Err = l.uploadFile(ctx, folderID, path)
			return nil
		})
	}

	_ = group.Wait()

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			l.log.Warn("upload failed",
				zap.String("file", result.Path),
				zap.Error(result.Err))
		}
	}

	l.log.Info("upload finished",
		zap.String("folder", folderID.String()),
		zap.Int("files", len(paths)),
		zap.Int("failed", failed))

	return results
}

func (l *Library) uploadFile(ctx context.Context, folderID shared.ID, path string) (shared.ImageItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return shared.ImageItem{}, err
	}
	defer file.Close()

	image, err := l.backend.UploadImage(ctx, folderID, filepath.Base(path), file)
	if err != nil {
		return shared.ImageItem{}, err
	}

	if image.FolderID.IsHome() {
		image.FolderID = folderID
	}

	return image, nil
}

// ApplyUploads appends the uploaded images, in submission order, when
// folderID is still selected. It returns how many were appended.
func (l *Library) ApplyUploads(folderID shared.ID, results []UploadResult) int {
	var images []shared.ImageItem
	for _, result := range results {
		if result.Err == nil {
			images = append(images, result.Image)
		}
	}

	return l.ApplyImported(folderID, images)
}

// UploadFiles uploads paths and applies the successes.
func (l *Library) UploadFiles(ctx context.Context, folderID shared.ID, paths []string) ([]UploadResult, error) {
	results, err := l.Upload(ctx, folderID, paths)
	if err != nil {
		return nil, err
	}

	l.ApplyUploads(folderID, results)
	return results, UploadErr(results)
}

// UploadErr joins the errors of failed files.
func UploadErr(results []UploadResult) error {
	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(result.Path), result.Err))
		}
	}

	return errors.Join(errs...)
}
