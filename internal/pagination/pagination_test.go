package pagination_test

import (
	"testing"

	"github.com/kinoops/backoffice/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPage(t *testing.T) {
	tests := []struct {
		name      string
		list      []int
		pageSize  int
		page      int
		wantLen   int
		wantTotal int
		wantFirst int
	}{
		{name: "first page of 25 by 10", list: ints(25), pageSize: 10, page: 1, wantLen: 10, wantTotal: 3, wantFirst: 1},
		{name: "last partial page", list: ints(25), pageSize: 10, page: 3, wantLen: 5, wantTotal: 3, wantFirst: 21},
		{name: "exact fit", list: ints(20), pageSize: 10, page: 2, wantLen: 10, wantTotal: 2, wantFirst: 11},
		{name: "single short page", list: ints(3), pageSize: 10, page: 1, wantLen: 3, wantTotal: 1, wantFirst: 1},
		{name: "empty list", list: nil, pageSize: 10, page: 1, wantLen: 0, wantTotal: 0},
		{name: "page past the end", list: ints(5), pageSize: 10, page: 2, wantLen: 0, wantTotal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := pagination.Page(tt.list, tt.pageSize, tt.page)
			assert.Equal(t, tt.wantTotal, total)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, pagination.Clamp(0, 3))
	assert.Equal(t, 1, pagination.Clamp(-5, 3))
	assert.Equal(t, 3, pagination.Clamp(7, 3))
	assert.Equal(t, 2, pagination.Clamp(2, 3))
	assert.Equal(t, 1, pagination.Clamp(4, 0))
}
