package photo

import (
	"context"
)

type Repository interface {
	FetchUserPhotos(ctx context.Context, userID UserID) (Photos, error)
	FetchLatestPhoto(ctx context.Context, userID UserID) (*Photo, error)
	CreatePhoto(ctx context.Context, req *Photo) (*Photo, error)
}
