package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tastebud-labs/foodadmin/internal/paginate"
)

func numbers(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		pages int
	}{
		{"partial last page", 23, 10, 3},
		{"exact fit", 20, 10, 2},
		{"single page", 5, 10, 1},
		{"empty", 0, 10, 1},
		{"size larger than collection", 3, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginate.New(numbers(tt.count), tt.size)
			assert.Equal(t, tt.pages, p.TotalPages())
		})
	}
}

func TestPageSlicing(t *testing.T) {
	p := paginate.New(numbers(23), 10)

	assert.Equal(t, 1, p.Current())
	assert.Len(t, p.Page(), 10)
	assert.Equal(t, 1, p.Page()[0])

	p.Next()
	assert.Equal(t, 2, p.Current())
	assert.Equal(t, 11, p.Page()[0])

	p.Next()
	assert.Equal(t, 3, p.Current())
	assert.Len(t, p.Page(), 3)
	assert.Equal(t, 23, p.Page()[2])

	// already on the last page
	p.Next()
	assert.Equal(t, 3, p.Current())
}

func TestGoToClamps(t *testing.T) {
	p := paginate.New(numbers(23), 10)

	p.GoTo(5)
	assert.Equal(t, 3, p.Current())

	p.GoTo(0)
	assert.Equal(t, 1, p.Current())

	p.GoTo(-2)
	assert.Equal(t, 1, p.Current())
}

func TestPrevStopsAtFirst(t *testing.T) {
	p := paginate.New(numbers(23), 10)
	p.Prev()
	assert.Equal(t, 1, p.Current())
	p.GoTo(2)
	p.Prev()
	assert.Equal(t, 1, p.Current())
}

func TestBounds(t *testing.T) {
	p := paginate.New(numbers(23), 10)
	p.GoTo(3)
	start, end := p.Bounds()
	assert.Equal(t, 20, start)
	assert.Equal(t, 23, end)

	empty := paginate.New([]int{}, 10)
	start, end = empty.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestSetItemsKeepsPageWhenStillValid(t *testing.T) {
	p := paginate.New(numbers(23), 10)
	p.GoTo(2)

	p.SetItems(numbers(15))
	assert.Equal(t, 2, p.Current())

	// shrink below the current page, position clamps
	p.SetItems(numbers(5))
	assert.Equal(t, 1, p.Current())
}

func TestDefaultPageSize(t *testing.T) {
	p := paginate.New(numbers(25), 0)
	assert.Equal(t, paginate.DefaultPageSize, p.PageSize())
	assert.Equal(t, 3, p.TotalPages())
}
