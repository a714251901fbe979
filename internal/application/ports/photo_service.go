package ports

import (
	"context"
	"mime/multipart"

	"photo-service-api/internal/domain/photo"
)

type PhotoService interface {
	UploadPhoto(ctx context.Context, userID photo.UserID, in *multipart.FileHeader) (*photo.Photo, error)
	FindUserPhotos(ctx context.Context, userID photo.UserID) (photo.Photos, error)
	FindLatestPhoto(ctx context.Context, userID photo.UserID) (*photo.Photo, error)
}
