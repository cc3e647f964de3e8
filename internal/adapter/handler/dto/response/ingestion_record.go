package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
)

type IngestionRecordResponse struct {
	ID                   uuid.UUID `json:"id"`
	BatchID              uuid.UUID `json:"batch_id"`
	Bucket               string    `json:"bucket"`
	Key                  string    `json:"key"`
	Disposition          string    `json:"disposition"`
	Reason               string    `json:"reason,omitempty"`
	Width                int       `json:"width,omitempty"`
	Height               int       `json:"height,omitempty"`
	ModerationStatus     string    `json:"moderation_status,omitempty"`
	ModerationConfidence *float64  `json:"moderation_confidence,omitempty"`
	ModerationFallback   bool      `json:"moderation_fallback,omitempty"`
	Labels               []string  `json:"labels"`
	Renditions           []string  `json:"renditions"`
	Quarantine           string    `json:"quarantine,omitempty"`
	Errors               []string  `json:"errors"`
	CreatedAt            time.Time `json:"created_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type IngestionsListResponse struct {
	Ingestions []IngestionRecordResponse `json:"ingestions"`
	Pagination PaginationResponse        `json:"pagination"`
}

func IngestionRecordFromEntity(r *entity.IngestionRecord) IngestionRecordResponse {
	resp := IngestionRecordResponse{
		ID:                   r.ID,
		BatchID:              r.BatchID,
		Bucket:               r.Bucket,
		Key:                  r.Key,
		Disposition:          string(r.Disposition),
		Reason:               r.Reason,
		Width:                r.Width,
		Height:               r.Height,
		ModerationStatus:     r.ModerationStatus,
		ModerationConfidence: r.ModerationConfidence,
		ModerationFallback:   r.ModerationFallback,
		Labels:               nonNil(r.Labels),
		Renditions:           nonNil(r.Renditions),
		Errors:               nonNil(r.Errors),
		CreatedAt:            r.CreatedAt,
	}
	if r.QuarantineKey != "" {
		resp.Quarantine = entity.NewObjectAddress(r.QuarantineBucket, r.QuarantineKey).String()
	}
	return resp
}

func IngestionRecordsFromEntities(records []entity.IngestionRecord) []IngestionRecordResponse {
	result := make([]IngestionRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, IngestionRecordFromEntity(&r))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
