package response

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MessageProcessed = "Images processed successfully"
	MessageFailed    = "Image processing failed"
)

// IngestResponse is the envelope returned to whoever delivered the
// notification.
type IngestResponse struct {
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	ProcessedCount int               `json:"processed_count"`
	SkippedCount   int               `json:"skipped_count"`
	FailedCount    int               `json:"failed_count"`
	BatchID        uuid.UUID         `json:"batch_id"`
	Results        []OutcomeResponse `json:"results"`
}

type IngestErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type OutcomeResponse struct {
	Bucket      string              `json:"bucket"`
	Key         string              `json:"key"`
	Disposition string              `json:"disposition"`
	Reason      string              `json:"reason,omitempty"`
	Width       int                 `json:"width,omitempty"`
	Height      int                 `json:"height,omitempty"`
	Moderation  *ModerationResponse `json:"moderation,omitempty"`
	Renditions  []RenditionResponse `json:"renditions,omitempty"`
	Quarantine  string              `json:"quarantine,omitempty"`
	Errors      []string            `json:"errors,omitempty"`
}

type ModerationResponse struct {
	Status     string   `json:"status"`
	Confidence float64  `json:"confidence"`
	Fallback   bool     `json:"fallback,omitempty"`
	Labels     []string `json:"labels,omitempty"`
}

type RenditionResponse struct {
	Name      string `json:"name"`
	Key       string `json:"key"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SizeBytes int    `json:"size_bytes"`
}

func IngestFromSummary(s *entity.Summary) IngestResponse {
	resp := IngestResponse{
		Status:         StatusSuccess,
		Message:        MessageProcessed,
		ProcessedCount: s.Processed,
		SkippedCount:   s.Skipped,
		FailedCount:    s.Failed,
		BatchID:        s.BatchID,
		Results:        make([]OutcomeResponse, 0, len(s.Outcomes)),
	}
	for i := range s.Outcomes {
		resp.Results = append(resp.Results, OutcomeFromEntity(&s.Outcomes[i]))
	}
	return resp
}

func IngestError(err error) IngestErrorResponse {
	return IngestErrorResponse{
		Status:  StatusError,
		Message: MessageFailed,
		Error:   err.Error(),
	}
}

func OutcomeFromEntity(o *entity.Outcome) OutcomeResponse {
	resp := OutcomeResponse{
		Bucket:      o.Address.Bucket,
		Key:         o.Address.Key,
		Disposition: string(o.Disposition),
		Reason:      o.Reason,
		Width:       o.Width,
		Height:      o.Height,
		Errors:      o.Errors,
	}

	switch v := o.Verdict.(type) {
	case entity.Approved:
		resp.Moderation = &ModerationResponse{Status: v.Status(), Confidence: v.Confidence, Fallback: v.Fallback}
	case entity.Rejected:
		resp.Moderation = &ModerationResponse{Status: v.Status(), Confidence: v.Confidence, Labels: v.Labels}
	}

	for _, r := range o.Renditions {
		resp.Renditions = append(resp.Renditions, RenditionResponse{
			Name:      r.Name,
			Key:       r.Key,
			Width:     r.Width,
			Height:    r.Height,
			SizeBytes: r.SizeBytes,
		})
	}

	if o.Quarantine != nil {
		resp.Quarantine = o.Quarantine.String()
	}

	return resp
}
