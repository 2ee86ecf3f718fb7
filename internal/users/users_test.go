package users

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAuthenticate(t *testing.T) {
	r := NewRegistry(t.TempDir())

	require.NoError(t, r.Register("budi", "sawah123"))

	ok, err := r.Authenticate("budi", "sawah123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Authenticate("budi", "salah")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Authenticate("siti", "sawah123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister_Duplicate(t *testing.T) {
	r := NewRegistry(t.TempDir())

	require.NoError(t, r.Register("budi", "a"))
	err := r.Register("budi", "b")
	assert.ErrorIs(t, err, ErrExists)
}

func TestExists(t *testing.T) {
	r := NewRegistry(t.TempDir())

	ok, err := r.Exists("budi")
	require.NoError(t, err)
	assert.False(t, ok, "empty registry knows nobody")

	require.NoError(t, r.Register("budi", "a"))
	ok, err = r.Exists("budi")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordsStoredHashed(t *testing.T) {
	dir := t.TempDir()
	r := NewRegistry(dir)
	require.NoError(t, r.Register("budi", "sawah123"))

	data, err := os.ReadFile(filepath.Join(dir, "akun.csv"))
	require.NoError(t, err)
	contents := string(data)

	assert.NotContains(t, contents, "sawah123", "plaintext must never hit disk")
	assert.Contains(t, contents, HashPassword("sawah123"))
}

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, HashPassword("x"), HashPassword("x"))
	assert.NotEqual(t, HashPassword("x"), HashPassword("y"))
	assert.Len(t, HashPassword("x"), 64, "hex-encoded sha256")
}
