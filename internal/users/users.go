package users

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrExists is returned when registering a username that is taken.
var ErrExists = errors.New("username already registered")

// User is one row in akun.csv.
type User struct {
	Username     string
	PasswordHash string // hex-encoded sha256
}

// Header is the CSV header for akun.csv.
const Header = "username,password"

const (
	numFields = 2
	fileName  = "akun.csv"
)

// Registry reads and writes the shared user file in a data directory.
// Authentication itself is outside the accounting core; commands use this
// to resolve --user before touching any books.
type Registry struct {
	dataDir string
}

// NewRegistry creates a Registry rooted at dataDir.
func NewRegistry(dataDir string) *Registry {
	return &Registry{dataDir: dataDir}
}

// HashPassword returns the stored form of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register adds a new user. Registering an existing username fails with
// ErrExists.
func (r *Registry) Register(username, password string) error {
	all, err := r.load()
	if err != nil {
		return err
	}
	for _, u := range all {
		if u.Username == username {
			return fmt.Errorf("%w: %s", ErrExists, username)
		}
	}
	all = append(all, User{Username: username, PasswordHash: HashPassword(password)})
	return r.save(all)
}

// Authenticate reports whether the username/password pair matches a
// registered user.
func (r *Registry) Authenticate(username, password string) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}
	want := HashPassword(password)
	for _, u := range all {
		if u.Username == username && u.PasswordHash == want {
			return true, nil
		}
	}
	return false, nil
}

// Exists reports whether a username is registered.
func (r *Registry) Exists(username string) (bool, error) {
	all, err := r.load()
	if err != nil {
		return false, err
	}
	for _, u := range all {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *Registry) path() string {
	return filepath.Join(r.dataDir, fileName)
}

func (r *Registry) load() ([]User, error) {
	f, err := os.Open(r.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening user file: %w", err)
	}
	defer f.Close()
	return readUsers(f)
}

func (r *Registry) save(all []User) error {
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	f, err := os.Create(r.path())
	if err != nil {
		return fmt.Errorf("creating user file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, u := range all {
		if err := cw.Write([]string{u.Username, u.PasswordHash}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func readUsers(r io.Reader) ([]User, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading user CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var all []User
	for _, rec := range records[1:] {
		all = append(all, User{Username: rec[0], PasswordHash: rec[1]})
	}
	return all, nil
}
