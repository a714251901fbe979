package photo

import (
	domain "photo-service-api/internal/domain/photo"
)

func fromDBModel(model *Photo) *domain.Photo {
	var p = &domain.Photo{
		UUID:   model.UUID,
		UserID: model.UserID,

		Bucket:     model.Bucket,
		ObjectName: model.ObjectName,
		FileName:   model.FileName,
		MimeType:   model.MimeType,
		SizeBytes:  model.SizeBytes,
		PhotoURL:   model.PhotoURL,

		UploadedAt: model.UploadedAt,
	}

	return p
}

func fromDBModels(models *Photos) domain.Photos {
	ps := make(domain.Photos, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}
