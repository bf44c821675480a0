package endpoints

import (
	"fmt"
	"strings"
)

type Endpoint string

var (
	Login       = Endpoint("/auth/login/")
	Register    = Endpoint("/auth/register/")
	GoogleLogin = Endpoint("/auth/gg-login/")

	Home         = Endpoint("/user/*/home/")
	CreateFolder = Endpoint("/user/*/folder/create/")
	Folder       = Endpoint("/user/*/folder/*/")
	FolderImages = Endpoint("/user/folder/*/images/")
	Image        = Endpoint("/user/folder/*/image/*/")
	UploadImage  = Endpoint("/user/*/upload/img/")

	ChangePermission = Endpoint("/user/folder/*/change-permission/")
	SharedFolders    = Endpoint("/user/*/shared/")

	SaveDriveToken = Endpoint("/user/*/sync/save_drive_token/")
	SyncImage      = Endpoint("/user/*/sync/img/")
	SyncFolder     = Endpoint("/user/sync/folder/")
)

// Format expands each "*" in the endpoint with the next arg and prefixes the
// result with the server's base URL.
func (e Endpoint) Format(server string, args ...string) string {
	strEndpoint := string(e)
	for _, arg := range args {
		strEndpoint = strings.Replace(strEndpoint, "*", arg, 1)
	}

	// Remove remaining wildcards
	strEndpoint = strings.ReplaceAll(strEndpoint, "*", "")

	server = strings.TrimSuffix(server, "/")
	strEndpoint = strings.TrimPrefix(strEndpoint, "/")
	url := fmt.Sprintf("%s/%s", server, strEndpoint)
	return url
}
