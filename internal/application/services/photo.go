package services

import (
	"context"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"photo-service-api/internal/application/ports"
	domain "photo-service-api/internal/domain/photo"
	"photo-service-api/internal/infrastructure/mq"
	photoDTO "photo-service-api/internal/interface/api/rest/dto/photo"
)

const maxObjectNameLen = 100

const defaultMimeType = "application/octet-stream"

type PhotoService struct {
	blob            ports.BlobStore
	photoRepository domain.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewPhotoService(
	blob ports.BlobStore,
	photoRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.PhotoService {
	return &PhotoService{
		blob:            blob,
		photoRepository: photoRepository,
		mq:              mq,
		mCounter:        mCounter,
	}
}

func (ps *PhotoService) FindUserPhotos(ctx context.Context, userID domain.UserID) (domain.Photos, error) {
	phs, err := ps.photoRepository.FetchUserPhotos(ctx, userID)
	if err != nil {
		return nil, err
	}

	return phs, nil
}

func (ps *PhotoService) FindLatestPhoto(ctx context.Context, userID domain.UserID) (*domain.Photo, error) {
	p, err := ps.photoRepository.FetchLatestPhoto(ctx, userID)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// UploadPhoto stores the bytes first; the record is inserted only after the
// blob store has accepted the whole object. A record-insert failure leaves
// the already stored object in place (no compensating delete).
func (ps *PhotoService) UploadPhoto(
	ctx context.Context,
	userID domain.UserID,
	in *multipart.FileHeader,
) (*domain.Photo, error) {
	p := ps.fillMetaData(in, new(domain.Photo), userID)

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err = ps.blob.PutObject(ctx, p.ObjectName, f, in.Size, p.MimeType); err != nil {
		return nil, err
	}

	out, err := ps.photoRepository.CreatePhoto(ctx, p)
	if err != nil {
		return nil, err
	}

	ps.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPost,
		UserID:  out.UserID,
		Payload: photoDTO.ToResponsePhoto(*out),
	}

	ps.mCounter.WithLabelValues("photos_uploaded_total").Inc()

	return out, nil
}

func (ps *PhotoService) fillMetaData(
	in *multipart.FileHeader,
	p *domain.Photo,
	userID domain.UserID,
) *domain.Photo {
	p.UserID = userID
	p.FileName = in.Filename
	p.MimeType = in.Header.Get("Content-Type")
	if p.MimeType == "" {
		p.MimeType = defaultMimeType
	}
	p.SizeBytes = uint64(in.Size)
	p.Bucket = ps.blob.GetBucket()
	p.ObjectName = sanitizeObjectName(in.Filename)
	p.PhotoURL = ps.blob.GetPublicURL(p.ObjectName)

	return p
}

// sanitizeObjectName keeps the client-supplied name as the object key but
// strips anything unsafe for it: path segments, control characters and
// combining marks. Plain ASCII names pass through unchanged.
func sanitizeObjectName(original string) string {
	if original == "" {
		return "photo"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "photo"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)

	ext := path.Ext(s)
	base := strings.TrimSuffix(s, ext)
	if base == "" {
		base = "photo"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxObjectNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
