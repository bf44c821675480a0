package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"photofolio/shared/constants"
)

const CLIKeyEnvVar = constants.EnvCLIKey

const KeySize int = 32
const SaltSize int = 16
const iterations = 100000

// ReadCLIKey returns the value of PHOTOFOLIO_CLI_KEY, or nil when it isn't
// set.
func ReadCLIKey() []byte {
	value, exists := os.LookupEnv(CLIKeyEnvVar)
	if !exists || len(value) == 0 {
		return nil
	}

	return []byte(value)
}

func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	return salt, nil
}

// DeriveSessionKeys stretches the CLI key into the hash key and block key
// used to seal the session file.
func DeriveSessionKeys(cliKey, salt []byte) ([]byte, []byte) {
	key := pbkdf2.Key(cliKey, salt, iterations, KeySize*2, sha256.New)
	return key[:KeySize], key[KeySize:]
}
