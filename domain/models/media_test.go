package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMediaType(t *testing.T) {
	for _, valid := range []string{"VIDEO", "TRAILER", "BANNER", "THUMBNAIL", "THUMBNAIL_HALF"} {
		mt, ok := ParseMediaType(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, MediaType(valid), mt)
	}

	_, ok := ParseMediaType("video")
	assert.False(t, ok)
	_, ok = ParseMediaType("")
	assert.False(t, ok)
}

func TestParseMediaStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "completed"} {
		st, ok := ParseMediaStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, MediaStatus(valid), st)
	}

	_, ok := ParseMediaStatus("error")
	assert.False(t, ok)
}

func TestMediaTypeIsAudioVideo(t *testing.T) {
	assert.True(t, MediaTypeVideo.IsAudioVideo())
	assert.True(t, MediaTypeTrailer.IsAudioVideo())
	assert.False(t, MediaTypeBanner.IsAudioVideo())
	assert.False(t, MediaTypeThumbnail.IsAudioVideo())
	assert.False(t, MediaTypeThumbnailHalf.IsAudioVideo())
}

func TestNewAudioVideoMedia_StartsPending(t *testing.T) {
	media := NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO")

	assert.NotEmpty(t, media.ID)
	assert.Equal(t, MediaStatusPending, media.Status)
	assert.True(t, media.IsPendingEncode())
	assert.Empty(t, media.EncodedLocation)
}

func TestAudioVideoMedia_TransitionsReturnCopies(t *testing.T) {
	media := NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO")

	processing := media.Processing()
	assert.Equal(t, MediaStatusProcessing, processing.Status)
	assert.Equal(t, MediaStatusPending, media.Status) // ต้นฉบับไม่เปลี่ยน
	assert.Equal(t, media.ID, processing.ID)

	completed := processing.Completed("encoded/x/movie.mpd")
	assert.Equal(t, MediaStatusCompleted, completed.Status)
	assert.Equal(t, "encoded/x/movie.mpd", completed.EncodedLocation)
	assert.Equal(t, MediaStatusProcessing, processing.Status)
}

func TestNewImageMedia(t *testing.T) {
	media := NewImageMedia("abc", "banner.jpg", "videos/x/BANNER")

	assert.NotEmpty(t, media.ID)
	assert.Equal(t, "banner.jpg", media.Name)
	assert.Equal(t, "videos/x/BANNER", media.Location)
}
