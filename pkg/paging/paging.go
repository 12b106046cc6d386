package paging

const (
	DefaultSize = 20
	MaxSize     = 200
)

type Request struct {
	Page int
	Size int
}

// Normalize приводит номер страницы (с 1) и размер к допустимым значениям.
func (r Request) Normalize() Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

func (r Request) Offset() int {
	n := r.Normalize()
	return (n.Page - 1) * n.Size
}

func (r Request) Limit() int {
	return r.Normalize().Size
}

type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	Total      int
	TotalPages int
}

func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Slice режет уже загруженный в память список.
func Slice[T any](items []T, req Request) Page[T] {
	req = req.Normalize()
	total := len(items)

	start := min(req.Offset(), total)
	end := min(start+req.Size, total)

	return Page[T]{
		Items:      items[start:end],
		Page:       req.Page,
		Size:       req.Size,
		Total:      total,
		TotalPages: TotalPages(total, req.Size),
	}
}

// FromWindow собирает страницу из результата LIMIT/OFFSET и общего количества.
func FromWindow[T any](items []T, total int, req Request) Page[T] {
	req = req.Normalize()
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		Total:      total,
		TotalPages: TotalPages(total, req.Size),
	}
}
