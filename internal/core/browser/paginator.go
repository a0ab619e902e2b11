package browser

// Paginator computes page boundaries for a list of total items split into
// pages of Size items. Pages are 1-based.
type Paginator struct {
	Total int
	Size  int
}

// PageCount returns ceil(total/size). It is 0 when there are no items.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Count returns the number of pages.
func (p Paginator) Count() int {
	return PageCount(p.Total, p.Size)
}

// HasPrev reports whether a previous page exists.
func (p Paginator) HasPrev(page int) bool {
	return page > 1
}

// HasNext reports whether a next page exists.
func (p Paginator) HasNext(page int) bool {
	return page < p.Count()
}

// Valid reports whether page can be jumped to.
func (p Paginator) Valid(page int) bool {
	return page >= 1 && page <= p.Count()
}

// Clamp forces page into [1, max(1, Count)].
func (p Paginator) Clamp(page int) int {
	n := p.Count()
	if n == 0 || page < 1 {
		return 1
	}
	if page > n {
		return n
	}
	return page
}

// Bounds returns the half-open slice range [start, end) holding page.
func (p Paginator) Bounds(page int) (start, end int) {
	if p.Size <= 0 || page < 1 {
		return 0, 0
	}
	start = (page - 1) * p.Size
	if start > p.Total {
		return p.Total, p.Total
	}
	end = min(start+p.Size, p.Total)
	return start, end
}

// windowSpan is the number of page numbers shown on each side of the
// current page.
const windowSpan = 1

// Window returns the page numbers rendered as jump controls around page.
func (p Paginator) Window(page int) []int {
	n := p.Count()
	if n == 0 {
		return nil
	}
	page = p.Clamp(page)
	lo := max(page-windowSpan, 1)
	hi := min(page+windowSpan, n)

	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
