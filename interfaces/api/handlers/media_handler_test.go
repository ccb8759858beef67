package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/domain/dto"
	"catalog-admin/domain/models"
	"catalog-admin/domain/validation"
	"catalog-admin/pkg/utils"
)

type fakeMediaService struct {
	uploadErr error
}

func (s *fakeMediaService) UploadMedia(ctx context.Context, videoID uuid.UUID, resources []dto.MediaResource) (*models.Video, error) {
	return nil, s.uploadErr
}

func (s *fakeMediaService) GetMedia(ctx context.Context, videoID uuid.UUID, mediaType models.MediaType) (io.ReadCloser, string, string, error) {
	return nil, "", "", nil
}

func (s *fakeMediaService) UpdateMediaStatus(ctx context.Context, cmd *dto.UpdateMediaStatusCommand) error {
	return nil
}

func newUploadApp(service *fakeMediaService) *fiber.App {
	app := fiber.New()
	handler := NewMediaHandler(service)
	app.Post("/videos/:id/medias/:type", handler.Upload)
	return app
}

func newUploadRequest(t *testing.T, target string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "movie.mp4")
	require.NoError(t, err)
	_, err = part.Write([]byte("raw video bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestMediaUpload_ValidationFailureReturnsAllMessages(t *testing.T) {
	notification := validation.NewNotification()
	notification.Append("'title' should not be empty")
	notification.Append("'rating' should not be null")
	service := &fakeMediaService{uploadErr: notification}
	app := newUploadApp(service)

	req := newUploadRequest(t, "/videos/"+uuid.NewString()+"/medias/VIDEO")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// domain validation ต้องตอบ 400 พร้อมทุกข้อความ ไม่ใช่ 500
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, utils.ErrCodeValidation, envelope.Error.Code)

	details, ok := envelope.Error.Details.([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{
		"'title' should not be empty",
		"'rating' should not be null",
	}, details)
}

func TestMediaUpload_UnknownVideoReturnsNotFound(t *testing.T) {
	service := &fakeMediaService{uploadErr: errors.New("video not found")}
	app := newUploadApp(service)

	req := newUploadRequest(t, "/videos/"+uuid.NewString()+"/medias/VIDEO")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
