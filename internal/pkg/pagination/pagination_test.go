package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/media-ingest/internal/pkg/pagination"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name          string
		page, perPage int
		wantPage      int
		wantPerPage   int
		wantOffset    int
	}{
		{"defaults", 0, 0, 1, pagination.DefaultPerPage, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"caps per page", 2, 500, 2, pagination.MaxPerPage, pagination.MaxPerPage},
		{"third page", 3, 25, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.NewParams(tt.page, tt.perPage)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.Limit())
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestParams_Info(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := pagination.NewParams(2, 10).Info(11)

		assert.Equal(t, 2, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("empty result has one page", func(t *testing.T) {
		info := pagination.NewParams(1, 10).Info(0)

		assert.Equal(t, 1, info.TotalPages)
		assert.False(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		info := pagination.NewParams(1, 10).Info(30)

		assert.Equal(t, 3, info.TotalPages)
		assert.True(t, info.HasNext)
	})
}
