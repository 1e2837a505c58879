package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(3, 20, 45)
	assert.False(t, last.HasNext)

	empty := NewPagination(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestNormalizePageLimit(t *testing.T) {
	page, limit := NormalizePageLimit(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePageLimit(-5, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = NormalizePageLimit(3, 50)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
}
