package entity

import (
	"time"

	"github.com/google/uuid"
)

// IngestionRecord is the persisted audit row of one Outcome.
type IngestionRecord struct {
	ID                   uuid.UUID
	BatchID              uuid.UUID
	Bucket               string
	Key                  string
	Disposition          Disposition
	Reason               string
	Width                int
	Height               int
	ModerationStatus     string
	ModerationConfidence *float64
	ModerationFallback   bool
	Labels               []string
	Renditions           []string
	QuarantineBucket     string
	QuarantineKey        string
	Errors               []string
	CreatedAt            time.Time
}

func NewIngestionRecord(batchID uuid.UUID, o *Outcome) *IngestionRecord {
	rec := &IngestionRecord{
		ID:          uuid.New(),
		BatchID:     batchID,
		Bucket:      o.Address.Bucket,
		Key:         o.Address.Key,
		Disposition: o.Disposition,
		Reason:      o.Reason,
		Width:       o.Width,
		Height:      o.Height,
		Labels:      []string{},
		Renditions:  o.RenditionNames(),
		Errors:      append([]string{}, o.Errors...),
		CreatedAt:   time.Now().UTC(),
	}

	switch v := o.Verdict.(type) {
	case Approved:
		rec.ModerationStatus = v.Status()
		rec.ModerationConfidence = &v.Confidence
		rec.ModerationFallback = v.Fallback
	case Rejected:
		rec.ModerationStatus = v.Status()
		rec.ModerationConfidence = &v.Confidence
		rec.Labels = append(rec.Labels, v.Labels...)
	}

	if o.Quarantine != nil {
		rec.QuarantineBucket = o.Quarantine.Bucket
		rec.QuarantineKey = o.Quarantine.Key
	}

	return rec
}
