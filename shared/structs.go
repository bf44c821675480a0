package shared

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Register struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLogin struct {
	AccessToken string `json:"access_token"`
}

type LoginResponse struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type HomeResponse struct {
	Folders []Folder    `json:"folders" validate:"required,dive"`
	Images  []ImageItem `json:"images" validate:"required,dive"`
}

type NewFolder struct {
	Name   string `json:"name"`
	Parent ID     `json:"parent"`
	Owner  ID     `json:"owner"`
}

type ImagesResponse struct {
	Images []ImageItem `json:"images" validate:"required,dive"`
}

// PermissionSet is the complete grant list for a folder. Submitting it
// replaces whatever was granted before.
type PermissionSet struct {
	Read   []string `json:"allow_read"`
	Write  []string `json:"allow_write"`
	Delete []string `json:"allow_delete"`
}

type SharedFoldersResponse struct {
	SharedFolders []SharedFolder `json:"shared_folders" validate:"required,dive"`
}

type SaveDriveToken struct {
	Code   string `json:"code"`
	UserID ID     `json:"userId"`
}

type SyncImage struct {
	UserID      ID     `json:"user_id"`
	DriveEmail  string `json:"drive_email"`
	ImageName   string `json:"img_name"`
	ImageID     string `json:"img_id"`
	ImageFolder ID     `json:"img_folder_id"`
	SyncType    string `json:"sync_type"`
}

type SyncFolder struct {
	Name          string `json:"name"`
	DriveFolderID string `json:"drive_folder_id"`
	Parent        ID     `json:"parent"`
}
