package handlers

import (
	"testing"

	"gigboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"size clamped to max", 1, 500, 1, 100},
		{"size at max passes", 2, 100, 2, 100},
		{"plain values", 2, 10, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := ParsePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestPageMetaTotalPages(t *testing.T) {
	meta := dto.NewPageMeta(25, 2, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages, "25 items at size 10 span 3 pages")

	assert.Equal(t, 0, dto.NewPageMeta(0, 1, 10).TotalPages)
	assert.Equal(t, 1, dto.NewPageMeta(10, 1, 10).TotalPages)
}
