// Package pagination normalizes page-number pagination parameters.
package pagination

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

type Page struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// Normalize coerces the parameters into page >= 1 and 1 <= size <= 100,
// applying the defaults when absent or out of range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
