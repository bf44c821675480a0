package api

import (
	"context"
	"encoding/json"

	"photofolio/cli/requests"
	"photofolio/shared"
	"photofolio/shared/endpoints"
)

// ChangePermission replaces the full grant list of a folder.
func (c *Context) ChangePermission(
	ctx context.Context,
	folderID shared.ID,
	permissions shared.PermissionSet,
) error {
	reqData, err := json.Marshal(permissions)
	if err != nil {
		return err
	}

	url := endpoints.ChangePermission.Format(c.Server, folderID.String())
	resp, err := requests.PostRequest(ctx, c.token(), url, reqData)
	if err != nil {
		return err
	}

	return expectSuccess(resp)
}
