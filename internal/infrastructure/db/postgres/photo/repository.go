package photo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "photo-service-api/internal/domain/photo"
	"photo-service-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserPhotos(ctx context.Context, userID domain.UserID) (domain.Photos, error) {
	rows, err := r.db.Query(ctx, SelectUserPhotos, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Photos
	for rows.Next() {
		p := new(Photo)

		if err = rows.Scan(
			&p.ID,
			&p.UUID,
			&p.UserID,

			&p.Bucket,
			&p.ObjectName,
			&p.FileName,
			&p.MimeType,
			&p.SizeBytes,
			&p.PhotoURL,

			&p.UploadedAt,
		); err != nil {
			return nil, err
		}

		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ps), nil
}

func (r *Repository) FetchLatestPhoto(ctx context.Context, userID domain.UserID) (*domain.Photo, error) {
	p := new(Photo)
	err := r.db.QueryRow(ctx, SelectLatestPhoto, userID).Scan(
		&p.ID,
		&p.UUID,
		&p.UserID,

		&p.Bucket,
		&p.ObjectName,
		&p.FileName,
		&p.MimeType,
		&p.SizeBytes,
		&p.PhotoURL,

		&p.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) CreatePhoto(ctx context.Context, req *domain.Photo) (*domain.Photo, error) {
	p := new(Photo)

	err := r.db.QueryRow(
		ctx,
		InsertPhoto,
		req.UserID, req.Bucket, req.ObjectName, req.FileName, req.MimeType, req.SizeBytes, req.PhotoURL,
	).Scan(
		&p.ID,
		&p.UUID,
		&p.UserID,

		&p.Bucket,
		&p.ObjectName,
		&p.FileName,
		&p.MimeType,
		&p.SizeBytes,
		&p.PhotoURL,

		&p.UploadedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), err
}
