package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorilla/securecookie"

	"photofolio/cli/crypto"
)

const sessionName = "session"
const saltName = "session-salt"

// ErrSealed is returned when the session file was sealed with a CLI key that
// is not available (or not the same) in the current environment.
var ErrSealed = errors.New("session is sealed with a different or missing " +
	crypto.CLIKeyEnvVar)

// Store persists a Session in the config directory. When a CLI key is
// provided the file is sealed with securecookie, otherwise it is plain JSON
// readable only by the current user.
type Store struct {
	path     string
	saltPath string
	cliKey   []byte
}

func NewStore(dir string, cliKey []byte) *Store {
	return &Store{
		path:     filepath.Join(dir, sessionName),
		saltPath: filepath.Join(dir, saltName),
		cliKey:   cliKey,
	}
}

// Load reads the persisted session. A missing file yields an empty session.
// On ErrSealed the returned session is empty but usable.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Session{}, nil
	} else if err != nil {
		return &Session{}, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &Session{}, nil
	}

	var s Session
	if data[0] == '{' {
		if err = json.Unmarshal(data, &s); err != nil {
			return &Session{}, fmt.Errorf("reading session: %w", err)
		}
		return &s, nil
	}

	if st.cliKey == nil {
		return &Session{}, ErrSealed
	}

	codec, err := st.codec(false)
	if err != nil {
		return &Session{}, err
	}

	if err = codec.Decode(sessionName, string(data), &s); err != nil {
		return &Session{}, fmt.Errorf("%w: %w", ErrSealed, err)
	}

	return &s, nil
}

func (st *Store) Save(s *Session) error {
	var data []byte
	if st.cliKey == nil {
		var err error
		data, err = json.Marshal(s)
		if err != nil {
			return err
		}
	} else {
		codec, err := st.codec(true)
		if err != nil {
			return err
		}

		sealed, err := codec.Encode(sessionName, s)
		if err != nil {
			return fmt.Errorf("sealing session: %w", err)
		}
		data = []byte(sealed)
	}

	if err := os.MkdirAll(filepath.Dir(st.path), 0700); err != nil {
		return err
	}

	return os.WriteFile(st.path, data, 0600)
}

// Clear removes the persisted session. The salt is kept so that a future
// session sealed with the same key derives the same keys.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (st *Store) codec(create bool) (*securecookie.SecureCookie, error) {
	salt, err := os.ReadFile(st.saltPath)
	if errors.Is(err, os.ErrNotExist) && create {
		if salt, err = crypto.NewSalt(); err != nil {
			return nil, err
		}

		if err = os.MkdirAll(filepath.Dir(st.saltPath), 0700); err != nil {
			return nil, err
		}

		if err = os.WriteFile(st.saltPath, salt, 0600); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("reading session salt: %w", err)
	}

	hashKey, blockKey := crypto.DeriveSessionKeys(st.cliKey, salt)
	codec := securecookie.New(hashKey, blockKey).
		SetSerializer(securecookie.JSONEncoder{}).
		MaxAge(0).
		MaxLength(0)

	return codec, nil
}
