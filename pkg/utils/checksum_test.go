package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"catalog-admin/domain/models"
)

func TestChecksum_Deterministic(t *testing.T) {
	a := Checksum([]byte("same content"))
	b := Checksum([]byte("same content"))
	c := Checksum([]byte("other content"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // sha256 hex
}

func TestMediaStoragePath(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-e5f6-4a1b-8c2d-0123456789ab")

	assert.Equal(t, "videos/a1b2c3d4-e5f6-4a1b-8c2d-0123456789ab", MediaFolder(id))
	assert.Equal(t,
		"videos/a1b2c3d4-e5f6-4a1b-8c2d-0123456789ab/VIDEO",
		MediaStoragePath(id, models.MediaTypeVideo))
	assert.Equal(t,
		"videos/a1b2c3d4-e5f6-4a1b-8c2d-0123456789ab/THUMBNAIL_HALF",
		MediaStoragePath(id, models.MediaTypeThumbnailHalf))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "movie.mp4", SanitizeFileName("../../etc/movie.mp4"))
	assert.Equal(t, "file", SanitizeFileName(".."))
	assert.Equal(t, "a_b.mp4", SanitizeFileName(`a"b.mp4`))
}

func TestContentTypeFromName(t *testing.T) {
	assert.Equal(t, "video/mp4", ContentTypeFromName("movie.mp4"))
	assert.Equal(t, "image/jpeg", ContentTypeFromName("banner.JPG"))
	assert.Equal(t, "image/webp", ContentTypeFromName("thumb.webp"))
	assert.Equal(t, "application/octet-stream", ContentTypeFromName("VIDEO"))
	assert.Equal(t, "application/octet-stream", ContentTypeFromName("data.unknownext"))
}
