package api

import (
	"context"
	"encoding/json"

	"photofolio/cli/requests"
	"photofolio/shared"
	"photofolio/shared/endpoints"
)

// FetchHome returns every folder owned by the user along with the images
// shown in the home view.
func (c *Context) FetchHome(ctx context.Context) (shared.HomeResponse, error) {
	userID, err := c.userID()
	if err != nil {
		return shared.HomeResponse{}, err
	}

	url := endpoints.Home.Format(c.Server, userID)
	resp, err := requests.GetRequest(ctx, c.token(), url)
	if err != nil {
		return shared.HomeResponse{}, err
	}

	var home shared.HomeResponse
	if err = c.decodeResponse(resp, &home); err != nil {
		return shared.HomeResponse{}, err
	}

	return home, nil
}

// CreateFolder creates a folder named name under parent. An empty parent
// creates a top-level folder.
func (c *Context) CreateFolder(ctx context.Context, name string, parent shared.ID) (shared.Folder, error) {
	userID, err := c.userID()
	if err != nil {
		return shared.Folder{}, err
	}

	reqData, err := json.Marshal(shared.NewFolder{
		Name:   name,
		Parent: parent,
		Owner:  shared.ID(userID),
	})
	if err != nil {
		return shared.Folder{}, err
	}

	url := endpoints.CreateFolder.Format(c.Server, userID)
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

// DeleteFolder deletes a folder. The backend removes its subfolders and
// images along with it.
func (c *Context) DeleteFolder(ctx context.Context, id shared.ID) error {
	userID, err := c.userID()
	if err != nil {
		return err
	}

	url := endpoints.Folder.Format(c.Server, userID, id.String())
	resp, err := requests.DeleteRequest(ctx, c.token(), url)
	if err != nil {
		return err
	}

	return expectSuccess(resp)
}

// FetchSharedFolders returns the folders other users have shared with the
// current user.
func (c *Context) FetchSharedFolders(ctx context.Context) ([]shared.SharedFolder, error) {
	userID, err := c.userID()
	if err != nil {
		return nil, err
	}

	url := endpoints.SharedFolders.Format(c.Server, userID)
	resp, err := requests.GetRequest(ctx, c.token(), url)
	if err != nil {
		return nil, err
	}

	var sharedResponse shared.SharedFoldersResponse
	if err = c.decodeResponse(resp, &sharedResponse); err != nil {
		return nil, err
	}

	return sharedResponse.SharedFolders, nil
}
