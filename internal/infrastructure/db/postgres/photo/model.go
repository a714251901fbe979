package photo

import (
	"time"

	"github.com/google/uuid"
)

type (
	Photo struct {
		ID     uint64
		UUID   uuid.UUID
		UserID string

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
