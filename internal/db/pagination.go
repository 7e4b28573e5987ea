package db

// ItemsPerPage is the fixed page size for every paginated listing.
const ItemsPerPage = 10

// Page is a bounded slice of a larger result set plus its total count.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	PageSize   int
}

func (p *Page[T]) IsEmpty() bool {
	return len(p.Items) == 0
}

func (p *Page[T]) PageCount() int {
	if p.TotalCount == 0 {
		return 0
	}
	count := int(p.TotalCount) / p.PageSize
	if int(p.TotalCount)%p.PageSize != 0 {
		count++
	}
	return count
}
