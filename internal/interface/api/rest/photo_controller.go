package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photo-service-api/internal/application/ports"
	"photo-service-api/internal/interface/api/rest/dto/photo"
	"photo-service-api/internal/interface/api/rest/validator"
)

// 10MB
const maxSize = int64(10 << 20)

type PhotoController struct {
	photoService ports.PhotoService
	logger       *zap.Logger
}

func NewPhotoController(
	r *gin.Engine,
	photoService ports.PhotoService,
	logger *zap.Logger,
) *PhotoController {
	pc := &PhotoController{
		photoService: photoService,
		logger:       logger,
	}

	r.POST(RouteUploadPhoto, pc.UploadPhotoHandler)
	r.GET(RouteUserPhotos, pc.GetUserPhotosHandler)
	r.GET(RouteLatestPhoto, pc.GetLatestPhotoHandler)

	return pc
}

func (pc *PhotoController) UploadPhotoHandler(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			photo.ErrorResponse{Success: false, Message: "no file uploaded"},
		)
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(
			http.StatusRequestEntityTooLarge,
			photo.ErrorResponse{Success: false, Message: "file too large or empty"},
		)
		return
	}

	ok, userID := validator.ValidateUserID(c.PostForm("userId"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			photo.ErrorResponse{Success: false, Message: "userId is required"},
		)
		return
	}

	p, err := pc.photoService.UploadPhoto(c.Request.Context(), userID, fh)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			photo.ErrorResponse{Success: false, Message: "failed to upload photo"},
		)
		pc.logger.Error("UploadPhoto() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, photo.UploadResponse{
		Success:  true,
		Message:  "photo uploaded successfully",
		PhotoURL: p.PhotoURL,
	})
}

func (pc *PhotoController) GetUserPhotosHandler(c *gin.Context) {
	ok, userID := validator.ValidateUserID(c.Param("userId"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			photo.ErrorResponse{Success: false, Message: "userId is required"},
		)
		return
	}

	phs, err := pc.photoService.FindUserPhotos(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			photo.ErrorResponse{Success: false, Message: "failed to get photos"},
		)
		pc.logger.Error("FindUserPhotos() error", zap.Error(err))
		return
	}

	// zero photos and unknown user are indistinguishable here
	if len(phs) == 0 {
		c.JSON(
			http.StatusNotFound,
			photo.ErrorResponse{Success: false, Message: "photos not found"},
		)
		return
	}

	c.JSON(http.StatusOK, photo.ListResponse{
		Success: true,
		Data:    photo.ToResponsePhotos(phs),
	})
}

func (pc *PhotoController) GetLatestPhotoHandler(c *gin.Context) {
	ok, userID := validator.ValidateUserID(c.Param("userId"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			photo.ErrorResponse{Success: false, Message: "userId is required"},
		)
		return
	}

	p, err := pc.photoService.FindLatestPhoto(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			photo.ErrorResponse{Success: false, Message: "failed to get photo"},
		)
		pc.logger.Error("FindLatestPhoto() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			photo.ErrorResponse{Success: false, Message: "photos not found"},
		)
		return
	}

	c.JSON(http.StatusOK, photo.SingleResponse{
		Success: true,
		Data:    photo.ToResponsePhoto(*p),
	})
}
