package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/media-ingest/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/media-ingest/internal/domain"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/httputil"
	"github.com/marcos-nsantos/media-ingest/internal/usecase/audit"
)

type IngestionHandler struct {
	auditSvc AuditService
}

func NewIngestionHandler(auditSvc AuditService) *IngestionHandler {
	return &IngestionHandler{auditSvc: auditSvc}
}

func (h *IngestionHandler) List(c *gin.Context) {
	var req request.ListIngestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	records, pageInfo, err := h.auditSvc.List(c.Request.Context(), audit.ListInput{
		Page:        req.Page,
		PerPage:     req.PerPage,
		Disposition: req.Disposition,
		Bucket:      req.Bucket,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDisposition):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DISPOSITION", "invalid disposition")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.IngestionsListResponse{
		Ingestions: response.IngestionRecordsFromEntities(records),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}
