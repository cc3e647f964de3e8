package entity

import "github.com/google/uuid"

type Disposition string

const (
	DispositionApproved    Disposition = "approved"
	DispositionQuarantined Disposition = "quarantined"
	DispositionSkipped     Disposition = "skipped"
	DispositionFailed      Disposition = "failed"
)

func (d Disposition) IsValid() bool {
	switch d {
	case DispositionApproved, DispositionQuarantined, DispositionSkipped, DispositionFailed:
		return true
	}
	return false
}

// Outcome is what happened to one object of a batch.
type Outcome struct {
	Address     ObjectAddress
	Disposition Disposition
	Reason      string
	Width       int
	Height      int
	Verdict     Verdict
	Renditions  []RenditionRecord
	Quarantine  *ObjectAddress
	Errors      []string
}

// RenditionRecord describes an uploaded rendition, without its bytes.
type RenditionRecord struct {
	Name      string
	Key       string
	Width     int
	Height    int
	SizeBytes int
}

func NewOutcome(addr ObjectAddress) *Outcome {
	return &Outcome{Address: addr}
}

func (o *Outcome) AddError(err error) {
	if err != nil {
		o.Errors = append(o.Errors, err.Error())
	}
}

func (o *Outcome) RenditionNames() []string {
	names := make([]string, len(o.Renditions))
	for i, r := range o.Renditions {
		names[i] = r.Name
	}
	return names
}

// Counted reports whether the outcome counts as processed.
func (o *Outcome) Counted() bool {
	return o.Disposition == DispositionApproved || o.Disposition == DispositionQuarantined
}

// Summary aggregates the outcomes of a batch.
type Summary struct {
	BatchID   uuid.UUID
	Processed int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

func NewSummary(batchID uuid.UUID, outcomes []Outcome) *Summary {
	s := &Summary{BatchID: batchID, Outcomes: outcomes}
	for i := range outcomes {
		switch outcomes[i].Disposition {
		case DispositionApproved, DispositionQuarantined:
			s.Processed++
		case DispositionSkipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}
