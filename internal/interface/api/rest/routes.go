package rest

const (
	// photos
	RouteUploadPhoto = "/upload-photo"
	RouteUserPhotos  = "/:userId"
	RouteLatestPhoto = "/latest/:userId"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
