package photo

import (
	"time"

	"github.com/google/uuid"
)

type (
	Photo struct {
		UUID       uuid.UUID `json:"uuid"`
		UserID     string    `json:"userId"`
		FileName   string    `json:"file_name"`
		MimeType   string    `json:"mime_type"`
		SizeBytes  uint64    `json:"size_bytes"`
		PhotoURL   string    `json:"photoUrl"`
		UploadedAt time.Time `json:"uploadedAt"`
	}
	Photos []Photo

	// Every response carries the "success" flag.
	UploadResponse struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		PhotoURL string `json:"photoUrl"`
	}
	ListResponse struct {
		Success bool   `json:"success"`
		Data    Photos `json:"data"`
	}
	SingleResponse struct {
		Success bool  `json:"success"`
		Data    Photo `json:"data"`
	}
	ErrorResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)
