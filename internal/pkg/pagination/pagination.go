// Package pagination holds page arithmetic for the ingestion audit listing.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 50
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps page and perPage into range. Zero values select the
// defaults so an empty query string lists the newest records.
func NewParams(page, perPage int) Params {
	return Params{
		Page:    max(page, DefaultPage),
		PerPage: clampPerPage(perPage),
	}
}

func clampPerPage(perPage int) int {
	switch {
	case perPage < 1:
		return DefaultPerPage
	case perPage > MaxPerPage:
		return MaxPerPage
	default:
		return perPage
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Info describes where a page sits within totalItems. An empty result still
// reports one page.
func (p Params) Info(totalItems int) *Info {
	totalPages := max((totalItems+p.PerPage-1)/p.PerPage, 1)

	return &Info{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
