package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photofolio/shared/constants"
)

type Paths struct {
	dir     string
	config  string
	logFile string
}

type GoogleConfig struct {
	ClientID     string `yaml:"client_id" env:"PHOTOFOLIO_GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"PHOTOFOLIO_GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirect_url" env:"PHOTOFOLIO_GOOGLE_REDIRECT_URL" env-default:"http://localhost"`
}

type Config struct {
	Server         string       `yaml:"server" env:"PHOTOFOLIO_API_URL" env-default:"http://127.0.0.1:8000/api"`
	DefaultView    string       `yaml:"default_view,omitempty" env:"PHOTOFOLIO_DEFAULT_VIEW" env-default:"table"`
	LogLevel       string       `yaml:"log_level" env:"PHOTOFOLIO_LOG_LEVEL" env-default:"info"`
	LogFile        string       `yaml:"log_file" env:"PHOTOFOLIO_LOG_FILE"`
	MaxUploadBytes int64        `yaml:"max_upload_bytes" env:"PHOTOFOLIO_MAX_UPLOAD_BYTES" env-default:"10485760"`
	Google         GoogleConfig `yaml:"google"`
}

var baseConfigPath = filepath.Join(".config", "photofolio")

const configFileName = "config.yml"
const logFileName = "photofolio.log"

//go:embed config.yml
var defaultConfig string

// SetupConfigDir ensures that the directory necessary for photofolio's config
// has been created. This path defaults to $HOME/.config/photofolio and can be
// moved with PHOTOFOLIO_CONFIG_DIR.
func SetupConfigDir() (Paths, error) {
	dir := os.Getenv(constants.EnvConfigDir)
	if len(dir) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		dir = filepath.Join(home, baseConfigPath)
	}

	return makeConfigDirectories(dir)
}

// makeConfigDirectories creates the directory for storing the user's local
// photofolio config
func makeConfigDirectories(dir string) (Paths, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return Paths{}, err
	}

	return Paths{
		dir:     dir,
		config:  filepath.Join(dir, configFileName),
		logFile: filepath.Join(dir, logFileName),
	}, nil
}

func (paths Paths) Dir() string {
	return paths.dir
}

// ReadConfig reads config.yml, writing the default config first if it does
// not exist yet. Values from the environment (and a .env file in the working
// directory) override the file.
func ReadConfig(paths Paths) (Config, error) {
	_ = godotenv.Load()

	if _, err := os.Stat(paths.config); errors.Is(err, os.ErrNotExist) {
		err = os.WriteFile(paths.config, []byte(defaultConfig), 0600)
		if err != nil {
			return Config{}, err
		}
	}

	var config Config
	if err := cleanenv.ReadConfig(paths.config, &config); err != nil {
		return Config{}, err
	}

	// Strip trailing slash
	config.Server = strings.TrimSuffix(config.Server, "/")

	if len(config.LogFile) == 0 {
		config.LogFile = paths.logFile
	}

	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = constants.MaxImageSize
	}

	return config, nil
}

// Save writes config back to config.yml.
func (paths Paths) Save(config Config) error {
	if config.LogFile == paths.logFile {
		config.LogFile = ""
	}

	out, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(paths.config, out, 0600)
}
