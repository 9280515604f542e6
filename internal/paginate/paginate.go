package paginate

// DefaultPageSize matches the admin tables.
const DefaultPageSize = 10

// Pager slices an ordered collection into fixed-size pages. The
// current page is always within [1, TotalPages], clamped to 1 when
// the collection is empty.
type Pager[T any] struct {
	items []T
	size  int
	page  int
}

func New[T any](items []T, size int) *Pager[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Pager[T]{items: items, size: size, page: 1}
}

func (p *Pager[T]) Len() int {
	return len(p.items)
}

func (p *Pager[T]) PageSize() int {
	return p.size
}

// TotalPages is never below 1 so the footer always has a page to show.
func (p *Pager[T]) TotalPages() int {
	if len(p.items) == 0 {
		return 1
	}
	return (len(p.items) + p.size - 1) / p.size
}

func (p *Pager[T]) Current() int {
	return p.page
}

// GoTo clamps the requested page into range before applying it.
func (p *Pager[T]) GoTo(page int) {
	p.page = p.clamp(page)
}

func (p *Pager[T]) Next() {
	p.GoTo(p.page + 1)
}

func (p *Pager[T]) Prev() {
	p.GoTo(p.page - 1)
}

// Page returns the records of the current page.
func (p *Pager[T]) Page() []T {
	start, end := p.Bounds()
	return p.items[start:end]
}

// Bounds returns the half-open [start, end) index range of the
// current page, for "showing X to Y of Z" style footers.
func (p *Pager[T]) Bounds() (int, int) {
	start := (p.page - 1) * p.size
	if start > len(p.items) {
		start = len(p.items)
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return start, end
}

// SetItems swaps the underlying collection, e.g. after an edit. The
// current page does not move unless it fell out of range, in which
// case it clamps to the new last page.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.page = p.clamp(p.page)
}

func (p *Pager[T]) clamp(page int) int {
	total := p.TotalPages()
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
