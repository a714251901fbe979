package photo

const (
	SelectUserPhotos = `
		SELECT id, uuid, user_id, bucket, object_name, file_name, mime_type, size_bytes, photo_url, uploaded_at
		FROM photos
		WHERE user_id = $1
		ORDER BY uploaded_at ASC, id ASC
	`
	// id is the tie-break on equal uploaded_at
	SelectLatestPhoto = `
		SELECT id, uuid, user_id, bucket, object_name, file_name, mime_type, size_bytes, photo_url, uploaded_at
		FROM photos
		WHERE user_id = $1
		ORDER BY uploaded_at DESC, id DESC
		LIMIT 1
	`
	InsertPhoto = `
		INSERT INTO photos (user_id, bucket, object_name, file_name, mime_type, size_bytes, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, uuid, user_id, bucket, object_name, file_name, mime_type, size_bytes, photo_url, uploaded_at
	`
)
