package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/httputil"
)

const maxNotificationSize = 1 << 20 // 1MB

type IngestHandler struct {
	ingestSvc IngestService
	logger    *zap.Logger
}

func NewIngestHandler(ingestSvc IngestService, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{ingestSvc: ingestSvc, logger: logger}
}

// Ingest accepts an S3 event notification and runs the batch synchronously.
// Only a body that cannot be parsed yields an error status. Unusable records
// and object failures are reported per object in the summary.
func (h *IngestHandler) Ingest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxNotificationSize)

	var req request.S3EventNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, err)
		return
	}

	summary := h.ingestSvc.Handle(c.Request.Context(), req.Addresses())
	c.Set(httputil.BatchIDKey, summary.BatchID.String())

	httputil.OK(c, response.IngestFromSummary(summary))
}

func (h *IngestHandler) reject(c *gin.Context, err error) {
	h.logger.Warn("rejected notification",
		zap.String("request_id", httputil.GetRequestID(c)),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, response.IngestError(err))
}
