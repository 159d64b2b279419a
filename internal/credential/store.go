package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Keys under which the two secrets are persisted.
const (
	KeyBasicAuth   = "sync_basic_auth"
	KeyAccessToken = "sync_access_token"
)

// ErrCorruptStore is returned by Load when the store file is not a JSON
// object of strings. Save replaces such a file.
var ErrCorruptStore = errors.New("unreadable credential store")

// Credentials are the two opaque secrets sent with every submission.
type Credentials struct {
	BasicAuth   string
	AccessToken string
}

// Complete reports whether both secrets are set.
func (c Credentials) Complete() bool {
	return c.BasicAuth != "" && c.AccessToken != ""
}

// Store is a flat JSON key/value file. Keys other than the two credential
// keys are preserved on save.
type Store struct {
	path string
}

// StorePath returns the default store location under homeDir.
func StorePath(homeDir string) string {
	return filepath.Join(homeDir, ".conbo", "store.json")
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads both credentials. Missing file or keys yield empty strings.
func (s *Store) Load() (Credentials, error) {
	values, err := s.read()
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		BasicAuth:   values[KeyBasicAuth],
		AccessToken: values[KeyAccessToken],
	}, nil
}

// Save writes both credentials. The file is replaced by rename so readers
// never observe one key updated without the other. A corrupt file is
// discarded and rewritten with only the two credential keys.
func (s *Store) Save(c Credentials) error {
	values, err := s.read()
	if errors.Is(err, ErrCorruptStore) {
		values = map[string]string{}
	} else if err != nil {
		return err
	}
	values[KeyBasicAuth] = c.BasicAuth
	values[KeyAccessToken] = c.AccessToken

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorruptStore, s.path, err)
	}
	return values, nil
}

// Mask hides all but the last four characters of a secret.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	r := []rune(secret)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}
