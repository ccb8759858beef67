package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	port, err := NewLocalStorage(LocalStorageConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	})
	require.NoError(t, err)
	return port.(*LocalStorage)
}

func TestLocalStorage_UploadReturnsPath(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.UploadFile(bytes.NewReader([]byte("raw bytes")), "videos/abc/VIDEO", "video/mp4")

	require.NoError(t, err)
	assert.Equal(t, "videos/abc/VIDEO", path)

	// ไฟล์ต้องอยู่จริงใน filesystem
	_, err = os.Stat(filepath.Join(s.basePath, "videos", "abc", "VIDEO"))
	assert.NoError(t, err)
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	content := []byte("the raw media file content")

	path, err := s.UploadFile(bytes.NewReader(content), "videos/abc/BANNER", "image/jpeg")
	require.NoError(t, err)

	reader, _, err := s.GetFileContent(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLocalStorage_ListFilesUnderPrefix(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UploadFile(bytes.NewReader([]byte("a")), "videos/abc/VIDEO", "video/mp4")
	require.NoError(t, err)
	_, err = s.UploadFile(bytes.NewReader([]byte("b")), "videos/abc/BANNER", "image/jpeg")
	require.NoError(t, err)
	_, err = s.UploadFile(bytes.NewReader([]byte("c")), "videos/other/VIDEO", "video/mp4")
	require.NoError(t, err)

	files, err := s.ListFiles("videos/abc")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"videos/abc/VIDEO", "videos/abc/BANNER"}, files)
}

func TestLocalStorage_ListFilesMissingPrefix(t *testing.T) {
	s := newTestStorage(t)

	files, err := s.ListFiles("videos/nothing-here")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalStorage_DeleteFilesClearsPrefix(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UploadFile(bytes.NewReader([]byte("a")), "videos/abc/VIDEO", "video/mp4")
	require.NoError(t, err)
	_, err = s.UploadFile(bytes.NewReader([]byte("b")), "videos/abc/THUMBNAIL", "image/jpeg")
	require.NoError(t, err)

	files, err := s.ListFiles("videos/abc")
	require.NoError(t, err)

	require.NoError(t, s.DeleteFiles(files))

	remaining, err := s.ListFiles("videos/abc")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestLocalStorage_DeleteFileIsIdempotent(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.DeleteFile("videos/ghost/VIDEO"))
}

func TestLocalStorage_DeleteFolder(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UploadFile(bytes.NewReader([]byte("a")), "videos/abc/VIDEO", "video/mp4")
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder("videos/abc"))

	files, err := s.ListFiles("videos/abc")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalStorage_GetFileURL(t *testing.T) {
	s := newTestStorage(t)

	assert.Equal(t, "http://localhost:8080/files/videos/abc/VIDEO", s.GetFileURL("videos/abc/VIDEO"))
}

func TestLocalStorage_ContentTypeFromExtension(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.UploadFile(bytes.NewReader([]byte("x")), "videos/abc/movie.mp4", "video/mp4")
	require.NoError(t, err)

	reader, contentType, err := s.GetFileContent("videos/abc/movie.mp4")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "video/mp4", contentType)
}
