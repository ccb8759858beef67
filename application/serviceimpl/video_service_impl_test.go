package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/validation"
)

// existsSet จำลอง ExistsByIDs: รู้จักเฉพาะ id ที่อยู่ในชุด
type existsSet struct {
	known map[uuid.UUID]bool
	err   error
}

func newExistsSet(ids ...uuid.UUID) *existsSet {
	s := &existsSet{known: make(map[uuid.UUID]bool)}
	for _, id := range ids {
		s.known[id] = true
	}
	return s
}

func (s *existsSet) ExistsByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if s.err != nil {
		return nil, s.err
	}
	var existing []uuid.UUID
	for _, id := range ids {
		if s.known[id] {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

type fakeCategoryRepo struct{ existsSet }

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error { return nil }
func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return nil, errors.New("record not found")
}
func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return nil, errors.New("record not found")
}
func (r *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeCategoryRepo) List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error) {
	return nil, 0, nil
}

type fakeGenreRepo struct{ existsSet }

func (r *fakeGenreRepo) Create(ctx context.Context, genre *models.Genre) error { return nil }
func (r *fakeGenreRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	return nil, errors.New("record not found")
}
func (r *fakeGenreRepo) GetBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	return nil, errors.New("record not found")
}
func (r *fakeGenreRepo) Update(ctx context.Context, genre *models.Genre) error { return nil }
func (r *fakeGenreRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakeGenreRepo) List(ctx context.Context, offset, limit int) ([]*models.Genre, int64, error) {
	return nil, 0, nil
}

type fakeCastMemberRepo struct{ existsSet }

func (r *fakeCastMemberRepo) Create(ctx context.Context, member *models.CastMember) error { return nil }
func (r *fakeCastMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CastMember, error) {
	return nil, errors.New("record not found")
}
func (r *fakeCastMemberRepo) Update(ctx context.Context, member *models.CastMember) error { return nil }
func (r *fakeCastMemberRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeCastMemberRepo) List(ctx context.Context, offset, limit int) ([]*models.CastMember, int64, error) {
	return nil, 0, nil
}

func validCreateRequest() *dto.CreateVideoRequest {
	return &dto.CreateVideoRequest{
		Title:       "Yellow Film",
		Description: "A description",
		LaunchYear:  2024,
		Duration:    120,
		Opened:      true,
		Published:   false,
		Rating:      "AGE_12",
	}
}

func TestVideoCreate_Success(t *testing.T) {
	categoryID := uuid.New()
	repo := newFakeVideoRepo()
	categories := &fakeCategoryRepo{existsSet: *newExistsSet(categoryID)}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	req := validCreateRequest()
	req.CategoryIDs = []uuid.UUID{categoryID}

	video, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, video)
	assert.Equal(t, "Yellow Film", video.Title)
	assert.True(t, video.CategoryIDs.Contains(categoryID))

	stored, err := repo.GetByID(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, video.ID, stored.ID)
}

func TestVideoCreate_MergesAllFailuresIntoOneNotification(t *testing.T) {
	missingCategory := uuid.New()
	missingGenre := uuid.New()
	repo := newFakeVideoRepo()
	categories := &fakeCategoryRepo{existsSet: *newExistsSet()}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	req := validCreateRequest()
	req.Title = "" // structural violation
	req.CategoryIDs = []uuid.UUID{missingCategory}
	req.GenreIDs = []uuid.UUID{missingGenre}

	_, err := service.Create(context.Background(), req)

	require.Error(t, err)

	var notification *validation.Notification
	require.True(t, errors.As(err, &notification))

	msgs := notification.Messages()
	assert.Len(t, msgs, 3)
	assert.Contains(t, msgs, "'title' should not be empty")
	assert.Contains(t, strings.Join(msgs, "\n"), missingCategory.String())
	assert.Contains(t, strings.Join(msgs, "\n"), missingGenre.String())

	// ไม่มีการ persist เมื่อ validation พลาด
	count, _ := repo.Count(context.Background())
	assert.Zero(t, count)
}

func TestVideoCreate_ExistenceCheckFailureBecomesNotification(t *testing.T) {
	repo := newFakeVideoRepo()
	categories := &fakeCategoryRepo{existsSet: existsSet{err: errors.New("db timeout")}}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	req := validCreateRequest()
	req.CategoryIDs = []uuid.UUID{uuid.New()}

	_, err := service.Create(context.Background(), req)

	var notification *validation.Notification
	require.True(t, errors.As(err, &notification))
	assert.Contains(t, notification.Messages(), "could not verify categories")
}

func TestVideoUpdate_PreservesMediaSlots(t *testing.T) {
	video := newUploadableVideo()
	video.SetVideoFile(models.NewAudioVideoMedia("abc", "movie.mp4", "videos/x/VIDEO"))
	repo := newFakeVideoRepo(video)
	categories := &fakeCategoryRepo{existsSet: *newExistsSet()}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	req := &dto.UpdateVideoRequest{
		Title:       "Renamed",
		Description: "Updated description",
		LaunchYear:  2025,
		Duration:    95,
		Rating:      "AGE_16",
	}

	updated, err := service.Update(context.Background(), video.ID, req)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.VideoFile)
	assert.Equal(t, "videos/x/VIDEO", updated.VideoFile.RawLocation)
}

func TestVideoUpdate_NotFound(t *testing.T) {
	repo := newFakeVideoRepo()
	categories := &fakeCategoryRepo{existsSet: *newExistsSet()}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	_, err := service.Update(context.Background(), uuid.New(), &dto.UpdateVideoRequest{})
	assert.EqualError(t, err, "video not found")
}

func TestVideoDelete_RemovesRecord(t *testing.T) {
	video := newUploadableVideo()
	repo := newFakeVideoRepo(video)
	categories := &fakeCategoryRepo{existsSet: *newExistsSet()}
	genres := &fakeGenreRepo{existsSet: *newExistsSet()}
	cast := &fakeCastMemberRepo{existsSet: *newExistsSet()}
	service := NewVideoService(repo, categories, genres, cast, newFakeStorage(), nil)

	err := service.Delete(context.Background(), video.ID)

	require.NoError(t, err)
	_, err = repo.GetByID(context.Background(), video.ID)
	assert.Error(t, err)
}
