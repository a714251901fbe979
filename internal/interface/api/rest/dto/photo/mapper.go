package photo

import (
	domain "photo-service-api/internal/domain/photo"
)

func ToResponsePhoto(pDomain domain.Photo) Photo {
	var p = Photo{
		UUID:       pDomain.UUID,
		UserID:     pDomain.UserID,
		FileName:   pDomain.FileName,
		MimeType:   pDomain.MimeType,
		SizeBytes:  pDomain.SizeBytes,
		PhotoURL:   pDomain.PhotoURL,
		UploadedAt: pDomain.UploadedAt,
	}

	return p
}

func ToResponsePhotos(pDomain domain.Photos) Photos {
	ps := make(Photos, len(pDomain))
	for idx, p := range pDomain {
		ps[idx] = ToResponsePhoto(*p)
	}

	return ps
}
