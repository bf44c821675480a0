package api

import (
	"context"
	"fmt"
	"io"
	"strings"

	"photofolio/cli/requests"
	"photofolio/cli/utils"
	"photofolio/shared"
	"photofolio/shared/constants"
	"photofolio/shared/endpoints"
)

func (c *Context) FetchFolderImages(ctx context.Context, folderID shared.ID) ([]shared.ImageItem, error) {
	url := endpoints.FolderImages.Format(c.Server, folderID.String())
	resp, err := requests.GetRequest(ctx, c.token(), url)
	if err != nil {
		return nil, err
	}

	var imagesResponse shared.ImagesResponse
	if err = c.decodeResponse(resp, &imagesResponse); err != nil {
		return nil, err
	}

	return imagesResponse.Images, nil
}

func (c *Context) DeleteImage(ctx context.Context, folderID, imageID shared.ID) error {
	url := endpoints.Image.Format(c.Server, folderID.String(), imageID.String())
	resp, err := requests.DeleteRequest(ctx, c.token(), url)
	if err != nil {
		return err
	}

	return expectSuccess(resp)
}

// UploadImage uploads the contents of r as an image named name into
// folderID (home when empty).
func (c *Context) UploadImage(
	ctx context.Context,
	folderID shared.ID,
	name string,
	r io.Reader,
) (shared.ImageItem, error) {
	userID, err := c.userID()
	if err != nil {
		return shared.ImageItem{}, err
	}

	url := endpoints.UploadImage.Format(c.Server, userID)
	resp, err := requests.PostMultipart(ctx, c.token(), url,
		map[string]string{
			"folder_id": folderID.PathValue(),
			"img_name":  name,
			"user_id":   userID,
		},
		requests.FormFile{
			Field:    "img_file",
			Filename: name,
			Reader:   r,
		})
	if err != nil {
		return shared.ImageItem{}, err
	}

	var image shared.ImageItem
	if err = c.decodeResponse(resp, &image); err != nil {
		return shared.ImageItem{}, err
	}

	return image, nil
}

// ImageURL returns the absolute address of an image. Relative URLs are
// resolved against the server.
func (c *Context) ImageURL(image shared.ImageItem) string {
	if strings.HasPrefix(image.URL, "/") {
		return strings.TrimSuffix(c.Server, "/api") + image.URL
	}

	return image.URL
}

// FetchImageData downloads the file behind an image URL for previewing.
func (c *Context) FetchImageData(ctx context.Context, image shared.ImageItem) ([]byte, error) {
	resp, err := requests.GetRequest(ctx, "", c.ImageURL(image))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, utils.ParseHTTPError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxImageSize+1))
	if err != nil {
		return nil, err
	} else if int64(len(data)) > constants.MaxImageSize {
		return nil, fmt.Errorf("image is larger than %d bytes", constants.MaxImageSize)
	}

	return data, nil
}
