package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParamsClampsPerPage(t *testing.T) {
	tests := []struct {
		name    string
		perPage int
		want    int
	}{
		{"zero falls back to default", 0, 20},
		{"negative falls back to default", -5, 20},
		{"within range kept", 50, 50},
		{"above cap clamped", 500, BulkMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(1, tt.perPage, 20, BulkMax)
			assert.Equal(t, tt.want, p.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	p := NewParams(3, 25, 20, BulkMax)
	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())

	first := NewParams(1, 25, 20, BulkMax)
	assert.Equal(t, 0, first.Offset())
}

func TestNewPaginationPagesMath(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		perPage   int
		wantPages int
	}{
		{"empty collection", 0, 20, 0},
		{"exact multiple", 100, 20, 5},
		{"partial final page", 101, 20, 6},
		{"single short page", 7, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(1, tt.perPage, 20, BulkMax)
			got := NewPagination(p, tt.total)
			assert.Equal(t, tt.wantPages, got.Pages)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}
