package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := []byte{0x89, 'P', 'N', 'G', 0, 1, 2, 3}

	err := Write(fs, "/tmp/shots/2024/03/05/142201.png", data)
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "/tmp/shots/2024/03/05/142201.png")
	require.NoError(t, err)
	assert.Equal(t, data, got, "bytes read back must equal bytes captured")
}

func TestWrite_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, Write(fs, "/shots/a.png", []byte("old")))
	require.NoError(t, Write(fs, "/shots/a.png", []byte("new")))

	got, err := afero.ReadFile(fs, "/shots/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := Write(fs, "/shots/a.png", []byte("data"))
	assert.ErrorIs(t, err, ErrWrite)
}
