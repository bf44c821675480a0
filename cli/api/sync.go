package api

import (
	"context"
	"encoding/json"

	"photofolio/cli/requests"
	"photofolio/shared"
	"photofolio/shared/endpoints"
)

// SaveDriveToken hands a Google authorization code to the backend so that it
// can reach the user's Drive on its own.
func (c *Context) SaveDriveToken(ctx context.Context, code string) error {
	userID, err := c.userID()
	if err != nil {
		return err
	}

	reqData, err := json.Marshal(shared.SaveDriveToken{
		Code:   code,
		UserID: shared.ID(userID),
	})
	if err != nil {
		return err
	}

	url := endpoints.SaveDriveToken.Format(c.Server, userID)
	resp, err := requests.PostRequest(ctx, c.token(), url, reqData)
	if err != nil {
		return err
	}

	return expectSuccess(resp)
}

// SyncImage registers a single Drive file as an image of a folder.
func (c *Context) SyncImage(ctx context.Context, sync shared.SyncImage) error {
	userID, err := c.userID()
	if err != nil {
		return err
	}

	sync.UserID = shared.ID(userID)
	reqData, err := json.Marshal(sync)
	if err != nil {
		return err
	}

	url := endpoints.SyncImage.Format(c.Server, userID)
	resp, err := requests.PostRequest(ctx, c.token(), url, reqData)
	if err != nil {
		return err
	}

	return expectSuccess(resp)
}

// SyncFolder creates a folder backed by a Drive folder.
func (c *Context) SyncFolder(ctx context.Context, sync shared.SyncFolder) (shared.Folder, error) {
	if _, err := c.userID(); err != nil {
		return shared.Folder{}, err
	}

	reqData, err := json.Marshal(sync)
	if err != nil {
		return shared.Folder{}, err
	}

	url := endpoints.SyncFolder.Format(c.Server)
	resp, err := requests.PostRequest(ctx, c.token(), url, reqData)
	if err != nil {
		return shared.Folder{}, err
	}

	var folder shared.Folder
	if err = c.decodeResponse(resp, &folder); err != nil {
		return shared.Folder{}, err
	}

	return folder, nil
}
