package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromPage_Vacia(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationFromPage_Defaults(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestBuildPaginationFromPage_UltimaPagina(t *testing.T) {
	p := BuildPaginationFromPage(41, 3, 20)

	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
