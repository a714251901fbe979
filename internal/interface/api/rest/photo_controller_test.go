// photo_controller_test.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photo-service-api/internal/application/ports"
	domainPhoto "photo-service-api/internal/domain/photo"
)

type FakePhotoService struct {
	UploadPhotoFunc     func(ctx context.Context, userID domainPhoto.UserID, fh *multipart.FileHeader) (*domainPhoto.Photo, error)
	FindUserPhotosFunc  func(ctx context.Context, userID domainPhoto.UserID) (domainPhoto.Photos, error)
	FindLatestPhotoFunc func(ctx context.Context, userID domainPhoto.UserID) (*domainPhoto.Photo, error)
}

func (f *FakePhotoService) UploadPhoto(ctx context.Context, userID domainPhoto.UserID, fh *multipart.FileHeader) (*domainPhoto.Photo, error) {
	if f.UploadPhotoFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadPhotoFunc(ctx, userID, fh)
}
func (f *FakePhotoService) FindUserPhotos(ctx context.Context, userID domainPhoto.UserID) (domainPhoto.Photos, error) {
	if f.FindUserPhotosFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserPhotosFunc(ctx, userID)
}
func (f *FakePhotoService) FindLatestPhoto(ctx context.Context, userID domainPhoto.UserID) (*domainPhoto.Photo, error) {
	if f.FindLatestPhotoFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindLatestPhotoFunc(ctx, userID)
}

func setupRouterPC(t *testing.T, phs ports.PhotoService) (*gin.Engine, *PhotoController) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()

	pc := &PhotoController{
		photoService: phs,
		logger:       logger,
	}

	r.POST(RouteUploadPhoto, pc.UploadPhotoHandler)
	r.GET(RouteUserPhotos, pc.GetUserPhotosHandler)
	r.GET(RouteLatestPhoto, pc.GetLatestPhotoHandler)

	return r, pc
}

func doReq(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, fileField, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if fileField != "" && fileName != "" && fileContent != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, _ = fw.Write(fileContent)
	}

	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPhotoController_UploadPhotoHandler(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		fileField   string
		fileName    string
		fileBytes   []byte
		mockPHS     func() ports.PhotoService
		wantStatus  int
		wantErr     string
		wantSuccess bool
		wantURL     string
	}{
		{
			name:       "400 no file, userId present",
			fields:     map[string]string{"userId": "u1"},
			fileField:  "", // no file part
			fileName:   "",
			fileBytes:  nil,
			mockPHS:    func() ports.PhotoService { return &FakePhotoService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "no file uploaded",
		},
		{
			name:       "400 no file, userId absent",
			fields:     nil,
			fileField:  "",
			fileName:   "",
			fileBytes:  nil,
			mockPHS:    func() ports.PhotoService { return &FakePhotoService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "no file uploaded",
		},
		{
			name:       "400 blank userId",
			fields:     map[string]string{"userId": "   "},
			fileField:  "photo",
			fileName:   "a.jpg",
			fileBytes:  []byte("jpeg-bytes"),
			mockPHS:    func() ports.PhotoService { return &FakePhotoService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "userId is required",
		},
		{
			name:       "413 empty file",
			fields:     map[string]string{"userId": "u1"},
			fileField:  "photo",
			fileName:   "empty.jpg",
			fileBytes:  []byte{},
			mockPHS:    func() ports.PhotoService { return &FakePhotoService{} },
			wantStatus: http.StatusRequestEntityTooLarge,
			wantErr:    "file too large or empty",
		},
		{
			name:      "500 blob store failure",
			fields:    map[string]string{"userId": "u1"},
			fileField: "photo",
			fileName:  "a.jpg",
			fileBytes: []byte("jpeg-bytes"),
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					UploadPhotoFunc: func(ctx context.Context, userID domainPhoto.UserID, fh *multipart.FileHeader) (*domainPhoto.Photo, error) {
						return nil, errors.New("blob write failed")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to upload photo",
		},
		{
			name:      "201 success",
			fields:    map[string]string{"userId": "u1"},
			fileField: "photo",
			fileName:  "a.jpg",
			fileBytes: []byte("jpeg-bytes"),
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					UploadPhotoFunc: func(ctx context.Context, userID domainPhoto.UserID, fh *multipart.FileHeader) (*domainPhoto.Photo, error) {
						return &domainPhoto.Photo{
							UUID:     uuid.New(),
							UserID:   userID,
							PhotoURL: "http://localhost:9000/u1-bucket/a.jpg",
						}, nil
					},
				}
			},
			wantStatus:  http.StatusCreated,
			wantSuccess: true,
			wantURL:     "http://localhost:9000/u1-bucket/a.jpg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterPC(t, tt.mockPHS())

			rr := doMultipartReq(t, r, http.MethodPost, "/upload-photo",
				tt.fields, tt.fileField, tt.fileName, tt.fileBytes)

			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantErr != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantErr, resp["message"])
			}
			if tt.wantSuccess {
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, tt.wantURL, resp["photoUrl"])
			}
		})
	}
}

func TestPhotoController_GetUserPhotosHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name       string
		userID     string
		mockPHS    func() ports.PhotoService
		wantStatus int
		wantErr    string
		wantLen    int
	}{
		{
			name:   "500 service error",
			userID: "u1",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindUserPhotosFunc: func(ctx context.Context, userID domainPhoto.UserID) (domainPhoto.Photos, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get photos",
		},
		{
			name:   "404 no photos",
			userID: "nouser",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindUserPhotosFunc: func(ctx context.Context, userID domainPhoto.UserID) (domainPhoto.Photos, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "photos not found",
		},
		{
			name:   "200 success",
			userID: "u1",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindUserPhotosFunc: func(ctx context.Context, userID domainPhoto.UserID) (domainPhoto.Photos, error) {
						return domainPhoto.Photos{
							{UUID: uuid.New(), UserID: userID, PhotoURL: "http://localhost:9000/u1-bucket/a.jpg", UploadedAt: now},
							{UUID: uuid.New(), UserID: userID, PhotoURL: "http://localhost:9000/u1-bucket/b.jpg", UploadedAt: now.Add(time.Second)},
						}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterPC(t, tt.mockPHS())
			rr := doReq(t, r, http.MethodGet, "/"+tt.userID)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantErr != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantErr, resp["message"])
				return
			}

			assert.Equal(t, true, resp["success"])
			data, ok := resp["data"].([]any)
			require.True(t, ok)
			assert.Len(t, data, tt.wantLen)
		})
	}
}

func TestPhotoController_GetLatestPhotoHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name       string
		userID     string
		mockPHS    func() ports.PhotoService
		wantStatus int
		wantErr    string
		wantURL    string
	}{
		{
			name:   "500 service error",
			userID: "u2",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindLatestPhotoFunc: func(ctx context.Context, userID domainPhoto.UserID) (*domainPhoto.Photo, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get photo",
		},
		{
			name:   "404 no photos",
			userID: "nouser",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindLatestPhotoFunc: func(ctx context.Context, userID domainPhoto.UserID) (*domainPhoto.Photo, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "photos not found",
		},
		{
			name:   "200 success",
			userID: "u2",
			mockPHS: func() ports.PhotoService {
				return &FakePhotoService{
					FindLatestPhotoFunc: func(ctx context.Context, userID domainPhoto.UserID) (*domainPhoto.Photo, error) {
						return &domainPhoto.Photo{
							UUID:       uuid.New(),
							UserID:     userID,
							PhotoURL:   "http://localhost:9000/u1-bucket/later.jpg",
							UploadedAt: now,
						}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantURL:    "http://localhost:9000/u1-bucket/later.jpg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterPC(t, tt.mockPHS())
			rr := doReq(t, r, http.MethodGet, "/latest/"+tt.userID)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantErr != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantErr, resp["message"])
				return
			}

			assert.Equal(t, true, resp["success"])
			data, ok := resp["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantURL, data["photoUrl"])
		})
	}
}
