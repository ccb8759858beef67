package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/domain/events"
	"catalog-admin/domain/validation"
)

func newTestVideo() *Video {
	return NewVideo(
		"Test Movie", "A movie about testing", 2024, 120,
		true, false, RatingAge12,
		nil, nil, nil,
	)
}

func TestNewVideo(t *testing.T) {
	video := newTestVideo()

	assert.NotEqual(t, uuid.Nil, video.ID)
	assert.Nil(t, video.VideoFile)
	assert.Nil(t, video.Trailer)
	assert.Nil(t, video.Banner)
	assert.Nil(t, video.Thumbnail)
	assert.Nil(t, video.ThumbnailHalf)
	assert.Empty(t, video.PendingEvents())

	// nil id slices ต้อง normalize เป็น empty slice
	assert.NotNil(t, video.CategoryIDs)
	assert.NotNil(t, video.GenreIDs)
	assert.NotNil(t, video.CastMemberIDs)
}

func TestVideoValidate_CollectsAllViolations(t *testing.T) {
	video := NewVideo("", "", 0, -1, false, false, Rating("BOGUS"), nil, nil, nil)

	n := validation.NewNotification()
	video.Validate(n)

	require.True(t, n.HasErrors())
	msgs := n.Messages()
	assert.Contains(t, msgs, "'title' should not be empty")
	assert.Contains(t, msgs, "'description' should not be empty")
	assert.Contains(t, msgs, "'launchYear' should not be null")
	assert.Contains(t, msgs, "'rating' should not be null")
	assert.Contains(t, msgs, "'duration' must be zero or positive")
}

func TestVideoValidate_ValidVideoHasNoErrors(t *testing.T) {
	n := validation.NewNotification()
	newTestVideo().Validate(n)
	assert.False(t, n.HasErrors())
}

func TestUpdateVideoMedia_PendingRaisesEvent(t *testing.T) {
	video := newTestVideo()
	media := NewAudioVideoMedia("abc123", "movie.mp4", "videos/"+video.ID.String()+"/VIDEO")

	video.UpdateVideoMedia(media)

	pending := video.PendingEvents()
	require.Len(t, pending, 1)

	event, ok := pending[0].(events.MediaCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, video.ID.String(), event.VideoID)
	assert.Equal(t, media.RawLocation, event.RawLocation)
	assert.Equal(t, "media.created", event.EventName())
}

func TestUpdateTrailerMedia_PendingRaisesEvent(t *testing.T) {
	video := newTestVideo()
	video.UpdateTrailerMedia(NewAudioVideoMedia("abc", "trailer.mp4", "videos/x/TRAILER"))

	assert.Len(t, video.PendingEvents(), 1)
}

func TestUpdateVideoMedia_NonPendingRaisesNoEvent(t *testing.T) {
	video := newTestVideo()
	media := NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO").Completed("encoded/x")

	video.UpdateVideoMedia(media)

	assert.Empty(t, video.PendingEvents())
}

func TestSetVideoFile_RaisesNoEvent(t *testing.T) {
	video := newTestVideo()
	video.SetVideoFile(NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))

	assert.Empty(t, video.PendingEvents())
}

func TestDrainEvents_ClearsQueue(t *testing.T) {
	video := newTestVideo()
	video.UpdateVideoMedia(NewAudioVideoMedia("a", "a.mp4", "videos/x/VIDEO"))
	video.UpdateTrailerMedia(NewAudioVideoMedia("b", "b.mp4", "videos/x/TRAILER"))

	drained := video.DrainEvents()
	assert.Len(t, drained, 2)
	assert.Empty(t, video.PendingEvents())
	assert.Empty(t, video.DrainEvents())
}

func TestApplyProcessing_EmptySlotIsNoOp(t *testing.T) {
	video := newTestVideo()

	video.ApplyProcessing(MediaTypeVideo)
	video.ApplyProcessing(MediaTypeTrailer)

	assert.Nil(t, video.VideoFile)
	assert.Nil(t, video.Trailer)
}

func TestApplyProcessing_IsIdempotent(t *testing.T) {
	video := newTestVideo()
	video.SetVideoFile(NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))

	video.ApplyProcessing(MediaTypeVideo)
	video.ApplyProcessing(MediaTypeVideo)

	assert.Equal(t, MediaStatusProcessing, video.VideoFile.Status)
	assert.Empty(t, video.PendingEvents())
}

func TestApplyCompleted_SetsEncodedLocation(t *testing.T) {
	video := newTestVideo()
	video.SetVideoFile(NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	video.ApplyProcessing(MediaTypeVideo)

	video.ApplyCompleted(MediaTypeVideo, "encoded/x/movie.mpd")

	assert.Equal(t, MediaStatusCompleted, video.VideoFile.Status)
	assert.Equal(t, "encoded/x/movie.mpd", video.VideoFile.EncodedLocation)
	// raw location คงเดิม
	assert.Equal(t, "videos/x/VIDEO", video.VideoFile.RawLocation)
}

func TestApplyCompleted_SkipsProcessing(t *testing.T) {
	// encoder อาจส่ง completed มาก่อน processing - ต้องข้ามขั้นได้
	video := newTestVideo()
	video.SetVideoFile(NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))

	video.ApplyCompleted(MediaTypeVideo, "encoded/x/movie.mpd")

	assert.Equal(t, MediaStatusCompleted, video.VideoFile.Status)
}

func TestApplyCompleted_IsIdempotent(t *testing.T) {
	video := newTestVideo()
	video.SetTrailer(NewAudioVideoMedia("abc", "trailer.mp4", "videos/x/TRAILER"))

	video.ApplyCompleted(MediaTypeTrailer, "encoded/x/trailer.mpd")
	video.ApplyCompleted(MediaTypeTrailer, "encoded/x/trailer.mpd")

	assert.Equal(t, MediaStatusCompleted, video.Trailer.Status)
	assert.Equal(t, "encoded/x/trailer.mpd", video.Trailer.EncodedLocation)
}

func TestStoredLocations(t *testing.T) {
	video := newTestVideo()
	assert.Empty(t, video.StoredLocations())

	video.SetVideoFile(NewAudioVideoMedia("a", "a.mp4", "videos/x/VIDEO"))
	video.SetBanner(NewImageMedia("b", "b.jpg", "videos/x/BANNER"))

	locations := video.StoredLocations()
	assert.ElementsMatch(t, []string{"videos/x/VIDEO", "videos/x/BANNER"}, locations)
}

func TestUUIDSliceContains(t *testing.T) {
	id := uuid.New()
	s := UUIDSlice{id}

	assert.True(t, s.Contains(id))
	assert.False(t, s.Contains(uuid.New()))
}
