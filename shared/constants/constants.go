package constants

const VERSION = "1.0.0"

const CLIUserAgent = "photofolio-cli"

const DefaultServer = "http://127.0.0.1:8000/api"

// MaxImageSize is the largest file the backend accepts for a single upload.
const MaxImageSize int64 = 10 * 1024 * 1024 // 10 mb

// MaxConcurrentUploads bounds how many files from one upload action are in
// flight at the same time.
const MaxConcurrentUploads = 4

const SyncTypeGoogleDrive = "gg_drive"

// DriveImageURL is the public view URL the backend stores for images that
// were imported from Google Drive.
const DriveImageURL = "https://drive.google.com/uc?export=view&id="

const DrivePageSize = 20

// ImportsPerSecond paces the per-image sync requests sent while importing a
// Drive selection.
const ImportsPerSecond = 5

const (
	EnvConfigDir = "PHOTOFOLIO_CONFIG_DIR"
	EnvServer    = "PHOTOFOLIO_API_URL"
	EnvCLIKey    = "PHOTOFOLIO_CLI_KEY"
)

const MaxFolderNameLength = 100
