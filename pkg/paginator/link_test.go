package paginator

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_EncodeToLink(t *testing.T) {
	ctx := context.Background()

	p, err := New[int](ctx, seq(43), 10)
	require.NoError(t, err)

	u, err := url.Parse("/api/v1/employees?page=abc&limit=10")
	require.NoError(t, err)

	tests := []struct {
		name string
		page int
		want string
	}{
		{
			name: "first",
			page: 1,
			want: `</api/v1/employees?limit=10&page=1>; rel="first", ` +
				`</api/v1/employees?limit=10&page=2>; rel="next", ` +
				`</api/v1/employees?limit=10&page=5>; rel="last"`,
		},
		{
			name: "middle",
			page: 3,
			want: `</api/v1/employees?limit=10&page=1>; rel="first", ` +
				`</api/v1/employees?limit=10&page=2>; rel="prev", ` +
				`</api/v1/employees?limit=10&page=4>; rel="next", ` +
				`</api/v1/employees?limit=10&page=5>; rel="last"`,
		},
		{
			name: "last",
			page: 5,
			want: `</api/v1/employees?limit=10&page=1>; rel="first", ` +
				`</api/v1/employees?limit=10&page=4>; rel="prev", ` +
				`</api/v1/employees?limit=10&page=5>; rel="last"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, err := p.Page(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pg.EncodeToLink(u))
		})
	}

	assert.Equal(t, "page=abc&limit=10", u.RawQuery)
}
