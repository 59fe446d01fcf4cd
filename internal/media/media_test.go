package media_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhairstudio/jhair-server/internal/media"
)

func newService(t *testing.T) (*media.Service, string) {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := media.NewService(dir, "/uploads", logger)
	require.NoError(t, err)

	return service, dir
}

// zeroReader yields an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

/*
TestSaveImage_StoresAndRenames verifies that stored files get a fresh name
under the managed directory and that the returned URL points at it.
*/
func TestSaveImage_StoresAndRenames(t *testing.T) {
	service, dir := newService(t)

	url, err := service.SaveImage("portrait.PNG", strings.NewReader("fake png bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is preserved lowercased")
	assert.NotContains(t, url, "portrait", "original name must be discarded")

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(content))
}

/*
TestSaveImage_RejectsExtension verifies the whitelist: non-image extensions
are rejected with a validation error and nothing is written to disk.
*/
func TestSaveImage_RejectsExtension(t *testing.T) {
	service, dir := newService(t)

	for _, name := range []string{"script.php", "archive.zip", "noext", "double.png.exe"} {
		_, err := service.SaveImage(name, strings.NewReader("x"))
		assert.Error(t, err, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

/*
TestSaveImage_SizeCap verifies that content over the 10MB limit is rejected
and the partial file is removed.
*/
func TestSaveImage_SizeCap(t *testing.T) {
	service, dir := newService(t)

	oversized := io.LimitReader(zeroReader{}, media.MaxUploadBytes+5)
	_, err := service.SaveImage("huge.jpg", oversized)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial upload must be cleaned up")
}

/*
TestDeleteByURL_Confinement verifies that deletion only ever touches files
inside the managed directory, whatever the URL looks like.
*/
func TestDeleteByURL_Confinement(t *testing.T) {
	service, dir := newService(t)

	// A file outside the managed directory that must survive every attempt.
	outside := filepath.Join(filepath.Dir(dir), "precious.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	service.DeleteByURL("/etc/passwd")
	service.DeleteByURL("/uploads/../precious.txt")
	service.DeleteByURL("https://evil.example/uploads/a.png")
	service.DeleteByURL("")

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must never be deleted")

	// The happy path still works.
	url, err := service.SaveImage("old.webp", strings.NewReader("old"))
	require.NoError(t, err)

	service.DeleteByURL(url)

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}
