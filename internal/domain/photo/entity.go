package photo

import (
	"time"

	"github.com/google/uuid"
)

type (
	UserID = string
	Photo  struct {
		UUID   uuid.UUID
		UserID UserID

		Bucket     string
		ObjectName string
		FileName   string
		MimeType   string
		SizeBytes  uint64
		PhotoURL   string

		UploadedAt time.Time
	}
	Photos []*Photo
)
