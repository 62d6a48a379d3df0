package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"defaults when absent", Page{}, Page{Page: 1, Size: 10}},
		{"page zero coerced", Page{Page: 0, Size: 20}, Page{Page: 1, Size: 20}},
		{"negative page coerced", Page{Page: -3, Size: 20}, Page{Page: 1, Size: 20}},
		{"size capped", Page{Page: 2, Size: 500}, Page{Page: 2, Size: 100}},
		{"size zero defaulted", Page{Page: 2, Size: 0}, Page{Page: 2, Size: 10}},
		{"valid untouched", Page{Page: 3, Size: 100}, Page{Page: 3, Size: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestOffset(t *testing.T) {
	p := Page{Page: 3, Size: 10}
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 10, p.Limit())

	first := Page{}.Normalize()
	assert.Equal(t, 0, first.Offset())
}
