package entity

const (
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Verdict is the outcome of a moderation check. It is either Approved or
// Rejected; the unexported method keeps the set closed.
type Verdict interface {
	Status() string
	Score() float64
	verdict()
}

// Approved is returned for clean images. Fallback marks verdicts substituted
// because the moderation service could not be reached.
type Approved struct {
	Confidence float64
	Fallback   bool
}

func (Approved) Status() string   { return ModerationApproved }
func (a Approved) Score() float64 { return a.Confidence }
func (Approved) verdict()         {}

type Rejected struct {
	Labels     []string
	Confidence float64
}

func (Rejected) Status() string   { return ModerationRejected }
func (r Rejected) Score() float64 { return r.Confidence }
func (Rejected) verdict()         {}

// ModerationLabel is a single label reported by the moderation service.
type ModerationLabel struct {
	Name       string
	Parent     string
	Confidence float64
}
