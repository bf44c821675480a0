package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID identifies users, folders and images. The backend sends numeric ids for
// users and folders and string ids for some images, so both are accepted.
// The empty ID is JSON null and, for folders, designates the home view.
type ID string

const HomeID ID = ""

func (id ID) IsHome() bool {
	return id == HomeID
}

func (id ID) String() string {
	return string(id)
}

// PathValue returns the id as it is written into endpoint paths and form
// fields, where home is sent as "null".
func (id ID) PathValue() string {
	if id.IsHome() {
		return "null"
	}

	return string(id)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsHome() {
		return []byte("null"), nil
	}

	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil &&
		strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = HomeID
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: invalid id %s", ErrMalformedResponse, b)
	}

	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("%w: id %s is not an integer", ErrMalformedResponse, n)
	}

	*id = ID(n.String())
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a creation date as sent by the backend. Raw keeps the original
// text; Time is zero when the text could not be parsed.
type Timestamp struct {
	time.Time
	Raw string
}

func ParseTimestamp(raw string) Timestamp {
	ts := Timestamp{Raw: raw}
	value := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			ts.Time = t
			break
		}
	}

	return ts
}

func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	} else if !t.Valid() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: timestamp %s is not a string", ErrMalformedResponse, b)
	}

	*t = ParseTimestamp(raw)
	return nil
}

type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
)

var Permissions = []Permission{
	PermissionRead,
	PermissionWrite,
	PermissionDelete,
}

func (p Permission) Valid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionDelete:
		return true
	default:
		return false
	}
}

type User struct {
	ID       ID     `json:"id" validate:"required"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Folder is a folder owned by the current user. AllowUpload and AllowSync
// default to true when the backend leaves them out.
type Folder struct {
	ID          ID     `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Parent      ID     `json:"parent"`
	OwnerID     ID     `json:"owner_id,omitempty"`
	AllowUpload bool   `json:"allowUpload"`
	AllowSync   bool   `json:"allowSync"`
}

func (f *Folder) UnmarshalJSON(b []byte) error {
	type alias Folder
	var payload struct {
		alias
		AllowUpload flag `json:"allowUpload"`
		AllowSync   flag `json:"allowSync"`
	}

	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}

	*f = Folder(payload.alias)
	f.AllowUpload = payload.AllowUpload.or(true)
	f.AllowSync = payload.AllowSync.or(true)
	return nil
}

// SharedFolder is a folder owned by someone else that the current user can
// access at a fixed permission.
type SharedFolder struct {
	ID          ID         `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Owner       User       `json:"owner"`
	SharedBy    string     `json:"shared_by,omitempty"`
	Permission  Permission `json:"permission" validate:"oneof=read write delete"`
	SharedAt    Timestamp  `json:"shared_at"`
	AllowUpload bool       `json:"allowUpload"`
	AllowSync   bool       `json:"allowSync"`
}

func (s *SharedFolder) UnmarshalJSON(b []byte) error {
	type alias SharedFolder
	var payload struct {
		alias
		AllowUpload flag `json:"allowUpload"`
		AllowSync   flag `json:"allowSync"`
	}

	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}

	*s = SharedFolder(payload.alias)
	s.AllowUpload = payload.AllowUpload.or(true)
	s.AllowSync = payload.AllowSync.or(true)
	return nil
}

// AsFolder returns the folder record the permission resolver and the image
// view operate on when a shared folder is selected.
func (s SharedFolder) AsFolder() Folder {
	return Folder{
		ID:          s.ID,
		Name:        s.Name,
		Parent:      HomeID,
		OwnerID:     s.Owner.ID,
		AllowUpload: s.AllowUpload,
		AllowSync:   s.AllowSync,
	}
}

type ImageItem struct {
	ID        ID        `json:"id" validate:"required"`
	Name      string    `json:"image_name"`
	URL       string    `json:"image" validate:"required"`
	FolderID  ID        `json:"folder_id"`
	CreatedAt Timestamp `json:"created_at"`
}

// flag is an optional boolean that also accepts "true"/"false" strings.
type flag struct {
	set   bool
	value bool
}

func (f *flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%w: invalid flag %q", ErrMalformedResponse, s)
		}
		f.set, f.value = true, v
		return nil
	}

	if err := json.Unmarshal(b, &f.value); err != nil {
		return fmt.Errorf("%w: invalid flag %s", ErrMalformedResponse, b)
	}

	f.set = true
	return nil
}

func (f flag) or(fallback bool) bool {
	if !f.set {
		return fallback
	}

	return f.value
}
