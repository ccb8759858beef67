package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/events"
	"catalog-admin/domain/models"
	"catalog-admin/pkg/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Fakes
// ═══════════════════════════════════════════════════════════════════════════════

type fakeVideoRepo struct {
	videos      map[uuid.UUID]*models.Video
	updateErr   error
	updateCalls int
}

func newFakeVideoRepo(videos ...*models.Video) *fakeVideoRepo {
	repo := &fakeVideoRepo{videos: make(map[uuid.UUID]*models.Video)}
	for _, v := range videos {
		repo.videos[v.ID] = v
	}
	return repo
}

func (r *fakeVideoRepo) Create(ctx context.Context, video *models.Video) error {
	r.videos[video.ID] = video
	return nil
}

func (r *fakeVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return video, nil
}

func (r *fakeVideoRepo) Update(ctx context.Context, video *models.Video) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updateCalls++
	r.videos[video.ID] = video
	return nil
}

func (r *fakeVideoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.videos, id)
	return nil
}

func (r *fakeVideoRepo) ListWithFilters(ctx context.Context, params *dto.VideoFilterRequest) ([]*models.Video, int64, error) {
	var out []*models.Video
	for _, v := range r.videos {
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVideoRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.videos)), nil
}

func (r *fakeVideoRepo) ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var existing []uuid.UUID
	for _, id := range ids {
		if _, ok := r.videos[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

type fakeStorage struct {
	mu        sync.Mutex
	files     map[string][]byte
	failPaths map[string]error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		files:     make(map[string][]byte),
		failPaths: make(map[string]error),
	}
}

func (s *fakeStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failPaths[path]; ok {
		return "", err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.files[path] = data
	return path, nil
}

func (s *fakeStorage) DeleteFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) DeleteFiles(paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		delete(s.files, p)
	}
	return nil
}

func (s *fakeStorage) DeleteFolder(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for p := range s.files {
		if strings.HasPrefix(p, prefix) {
			delete(s.files, p)
		}
	}
	return nil
}

func (s *fakeStorage) ListFiles(prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var paths []string
	for p := range s.files {
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

func (s *fakeStorage) GetFileURL(path string) string {
	return "http://storage.test/" + path
}

func (s *fakeStorage) GetFileContent(path string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, "", errors.New("file not found")
	}
	return io.NopCloser(bytes.NewReader(data)), "application/octet-stream", nil
}

func (s *fakeStorage) GetProviderName() string {
	return "fake"
}

type fakeEventPublisher struct {
	published []events.DomainEvent
	failErr   error
}

func (p *fakeEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if p.failErr != nil {
		return p.failErr
	}
	p.published = append(p.published, event)
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// UploadMedia
// ═══════════════════════════════════════════════════════════════════════════════

func newUploadableVideo() *models.Video {
	return models.NewVideo(
		"Upload Target", "Video used in upload tests", 2024, 90,
		true, false, models.RatingAge14,
		nil, nil, nil,
	)
}

func videoResource(content string) dto.MediaResource {
	return dto.MediaResource{
		Type:        models.MediaTypeVideo,
		Name:        "movie.mp4",
		ContentType: "video/mp4",
		Content:     []byte(content),
	}
}

func bannerResource(content string) dto.MediaResource {
	return dto.MediaResource{
		Type:        models.MediaTypeBanner,
		Name:        "banner.jpg",
		ContentType: "image/jpeg",
		Content:     []byte(content),
	}
}

func TestUploadMedia_StoresAttachesAndPublishes(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	storage := newFakeStorage()
	publisher := &fakeEventPublisher{}
	service := NewMediaService(repo, storage, publisher, nil)

	result, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes"), bannerResource("banner bytes")})

	require.NoError(t, err)
	require.NotNil(t, result)

	// ทุกไฟล์ลง path แบบ deterministic ใต้ prefix ของ video
	videoPath := utils.MediaStoragePath(video.ID, models.MediaTypeVideo)
	bannerPath := utils.MediaStoragePath(video.ID, models.MediaTypeBanner)
	paths, _ := storage.ListFiles(utils.MediaFolder(video.ID))
	assert.ElementsMatch(t, []string{videoPath, bannerPath}, paths)

	// slot ถูก attach และ persist ครั้งเดียว
	require.NotNil(t, result.VideoFile)
	assert.Equal(t, models.MediaStatusPending, result.VideoFile.Status)
	assert.Equal(t, videoPath, result.VideoFile.RawLocation)
	require.NotNil(t, result.Banner)
	assert.Equal(t, bannerPath, result.Banner.Location)
	assert.Equal(t, 1, repo.updateCalls)

	// media.created ออกเฉพาะ audio/video ที่ pending / คิว event ถูกล้างหลังส่ง
	require.Len(t, publisher.published, 1)
	event, ok := publisher.published[0].(events.MediaCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, video.ID.String(), event.VideoID)
	assert.Equal(t, videoPath, event.RawLocation)
	assert.Empty(t, result.PendingEvents())
}

func TestUploadMedia_ImageOnlyPublishesNothing(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	publisher := &fakeEventPublisher{}
	service := NewMediaService(repo, newFakeStorage(), publisher, nil)

	_, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{bannerResource("banner bytes")})

	require.NoError(t, err)
	assert.Empty(t, publisher.published)
}

func TestUploadMedia_RollbackOnStoreFailure(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	storage := newFakeStorage()
	storage.failPaths[utils.MediaStoragePath(video.ID, models.MediaTypeBanner)] = errors.New("disk full")
	service := NewMediaService(repo, storage, &fakeEventPublisher{}, nil)

	_, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes"), bannerResource("banner bytes")})

	require.Error(t, err)

	// ไฟล์แรกที่เก็บสำเร็จแล้วต้องถูกลบทิ้งทั้ง prefix
	paths, _ := storage.ListFiles(utils.MediaFolder(video.ID))
	assert.Empty(t, paths)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUploadMedia_RollbackOnPersistFailure(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	repo.updateErr = errors.New("connection reset")
	storage := newFakeStorage()
	service := NewMediaService(repo, storage, &fakeEventPublisher{}, nil)

	_, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes")})

	require.Error(t, err)

	paths, _ := storage.ListFiles(utils.MediaFolder(video.ID))
	assert.Empty(t, paths)
}

func TestUploadMedia_PublishFailureKeepsEventsQueued(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	publisher := &fakeEventPublisher{failErr: errors.New("nats down")}
	service := NewMediaService(repo, newFakeStorage(), publisher, nil)

	_, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes")})

	require.Error(t, err)
	// คิวไม่ถูกล้าง - retry รอบหน้าส่งซ้ำได้
	assert.Len(t, video.PendingEvents(), 1)
}

func TestUploadMedia_NoPublisherKeepsEventsQueued(t *testing.T) {
	// container ยอมให้ NATS ล่มตอน boot ได้ - service ต้องคืน error ธรรมดา
	// ไม่ใช่ panic กลาง request
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), nil, nil)

	result, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "event publisher unavailable")
	assert.Nil(t, result)

	// ไฟล์กับ slot persist ไปแล้ว event รอ retry ในคิว
	stored, getErr := repo.GetByID(context.Background(), video.ID)
	require.NoError(t, getErr)
	require.NotNil(t, stored.VideoFile)
	assert.Len(t, stored.PendingEvents(), 1)
}

func TestUploadMedia_ImageOnlyWithNoPublisherSucceeds(t *testing.T) {
	// image ไม่มี event ให้ส่ง - messaging ล่มต้องไม่ขวาง upload
	video := newUploadableVideo()
	service := NewMediaService(newFakeVideoRepo(video), newFakeStorage(), nil, nil)

	result, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{bannerResource("banner bytes")})

	require.NoError(t, err)
	require.NotNil(t, result.Banner)
}

func TestUploadMedia_UnknownVideo(t *testing.T) {
	service := NewMediaService(newFakeVideoRepo(), newFakeStorage(), &fakeEventPublisher{}, nil)

	_, err := service.UploadMedia(context.Background(), uuid.New(),
		[]dto.MediaResource{videoResource("raw")})

	require.EqualError(t, err, "video not found")
}

func TestUploadMedia_RejectsInvalidInput(t *testing.T) {
	video := newUploadableVideo()
	service := NewMediaService(newFakeVideoRepo(video), newFakeStorage(), &fakeEventPublisher{}, nil)
	ctx := context.Background()

	_, err := service.UploadMedia(ctx, video.ID, nil)
	assert.EqualError(t, err, "no media resources provided")

	_, err = service.UploadMedia(ctx, video.ID, []dto.MediaResource{
		{Type: models.MediaType("GALLERY"), Name: "x", Content: []byte("x")},
	})
	assert.EqualError(t, err, "invalid media type")

	_, err = service.UploadMedia(ctx, video.ID, []dto.MediaResource{
		videoResource("a"), videoResource("b"),
	})
	assert.EqualError(t, err, "duplicate media type in upload")
}

// ═══════════════════════════════════════════════════════════════════════════════
// GetMedia
// ═══════════════════════════════════════════════════════════════════════════════

func TestGetMedia_RoundTrip(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	storage := newFakeStorage()
	service := NewMediaService(repo, storage, &fakeEventPublisher{}, nil)

	_, err := service.UploadMedia(context.Background(), video.ID,
		[]dto.MediaResource{videoResource("raw video bytes")})
	require.NoError(t, err)

	reader, contentType, name, err := service.GetMedia(context.Background(), video.ID, models.MediaTypeVideo)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "raw video bytes", string(data))
	assert.Equal(t, "movie.mp4", name)
	// storage key ไม่มีนามสกุล - content type มาจากชื่อไฟล์ต้นฉบับ
	assert.Equal(t, "video/mp4", contentType)
}

func TestGetMedia_EmptySlot(t *testing.T) {
	video := newUploadableVideo()
	service := NewMediaService(newFakeVideoRepo(video), newFakeStorage(), &fakeEventPublisher{}, nil)

	_, _, _, err := service.GetMedia(context.Background(), video.ID, models.MediaTypeTrailer)
	assert.EqualError(t, err, "media not found")
}

// ═══════════════════════════════════════════════════════════════════════════════
// UpdateMediaStatus
// ═══════════════════════════════════════════════════════════════════════════════

func TestUpdateMediaStatus_CompletedSetsEncodedLocation(t *testing.T) {
	video := newUploadableVideo()
	video.SetVideoFile(models.NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusCompleted,
		VideoID:    video.ID,
		ResourceID: video.VideoFile.ID,
		Folder:     "encoded/x",
		Filename:   "movie.mpd",
	})

	require.NoError(t, err)
	assert.Equal(t, models.MediaStatusCompleted, video.VideoFile.Status)
	assert.Equal(t, "encoded/x/movie.mpd", video.VideoFile.EncodedLocation)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdateMediaStatus_ProcessingStampsSlot(t *testing.T) {
	video := newUploadableVideo()
	video.SetTrailer(models.NewAudioVideoMedia("abc", "trailer.mp4", "videos/x/TRAILER"))
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusProcessing,
		VideoID:    video.ID,
		ResourceID: video.Trailer.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, models.MediaStatusProcessing, video.Trailer.Status)
}

func TestUpdateMediaStatus_PendingIsNoOp(t *testing.T) {
	video := newUploadableVideo()
	video.SetVideoFile(models.NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusPending,
		VideoID:    video.ID,
		ResourceID: video.VideoFile.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, models.MediaStatusPending, video.VideoFile.Status)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateMediaStatus_UnmatchedResourceIsInert(t *testing.T) {
	// asset อาจถูกแทนที่ไปแล้ว - result เก่าต้องไม่แตะ state อะไรเลย
	video := newUploadableVideo()
	video.SetVideoFile(models.NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusCompleted,
		VideoID:    video.ID,
		ResourceID: uuid.NewString(),
		Folder:     "encoded/x",
		Filename:   "movie.mpd",
	})

	require.NoError(t, err)
	assert.Equal(t, models.MediaStatusPending, video.VideoFile.Status)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdateMediaStatus_VideoSlotWinsOverTrailer(t *testing.T) {
	video := newUploadableVideo()
	video.SetVideoFile(models.NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	video.SetTrailer(models.NewAudioVideoMedia("def", "trailer.mp4", "videos/x/TRAILER"))
	// บังคับให้ id ชนกันเพื่อยืนยันลำดับการ match
	video.Trailer.ID = video.VideoFile.ID
	repo := newFakeVideoRepo(video)
	service := NewMediaService(repo, newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusCompleted,
		VideoID:    video.ID,
		ResourceID: video.VideoFile.ID,
		Folder:     "encoded/x",
		Filename:   "movie.mpd",
	})

	require.NoError(t, err)
	assert.Equal(t, models.MediaStatusCompleted, video.VideoFile.Status)
	assert.Equal(t, models.MediaStatusPending, video.Trailer.Status)
}

func TestMediaLifecycle_UploadEncodeComplete(t *testing.T) {
	// ครบวง: upload → media.created → processing → completed
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	publisher := &fakeEventPublisher{}
	service := NewMediaService(repo, newFakeStorage(), publisher, nil)
	ctx := context.Background()

	_, err := service.UploadMedia(ctx, video.ID, []dto.MediaResource{videoResource("raw")})
	require.NoError(t, err)
	require.Len(t, publisher.published, 1)

	resourceID := video.VideoFile.ID

	require.NoError(t, service.UpdateMediaStatus(ctx, &dto.UpdateMediaStatusCommand{
		Status: models.MediaStatusProcessing, VideoID: video.ID, ResourceID: resourceID,
	}))
	assert.Equal(t, models.MediaStatusProcessing, video.VideoFile.Status)

	require.NoError(t, service.UpdateMediaStatus(ctx, &dto.UpdateMediaStatusCommand{
		Status: models.MediaStatusCompleted, VideoID: video.ID, ResourceID: resourceID,
		Folder: "encoded/" + video.ID.String(), Filename: "stream.mpd",
	}))
	assert.Equal(t, models.MediaStatusCompleted, video.VideoFile.Status)
	assert.Equal(t, "encoded/"+video.ID.String()+"/stream.mpd", video.VideoFile.EncodedLocation)

	// ไม่มี event เพิ่มจากเส้นทาง encoder
	assert.Len(t, publisher.published, 1)
}

func TestUpdateMediaStatus_UnknownVideo(t *testing.T) {
	service := NewMediaService(newFakeVideoRepo(), newFakeStorage(), &fakeEventPublisher{}, nil)

	err := service.UpdateMediaStatus(context.Background(), &dto.UpdateMediaStatusCommand{
		Status:     models.MediaStatusCompleted,
		VideoID:    uuid.New(),
		ResourceID: uuid.NewString(),
	})

	assert.EqualError(t, err, "video not found")
}
