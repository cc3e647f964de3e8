package request

type ListIngestionsRequest struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Disposition string `form:"disposition" binding:"omitempty,oneof=approved quarantined skipped failed"`
	Bucket      string `form:"bucket" binding:"omitempty,max=63"`
}
