package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"clearance/shared/constant"
	"clearance/shared/dto"
	"clearance/shared/model"
	"clearance/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 10, 20, 8, 30, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 10, 21, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt})

	assert.Equal(t, timezone.ToAppTime(createdAt).Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.ToAppTime(modifiedAt).Format(constant.DateFormat), metadata.ModifiedAt)
}

func TestMetadata_Touch(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	var m model.Metadata
	m.Touch(first)
	m.Touch(second)

	assert.Equal(t, first, m.CreatedAt)
	assert.Equal(t, second, m.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	sortable := []string{"created_at", "status"}

	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "status",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "status", SortDir: "ASC"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
		},
		{
			name:           "with invalid and negative numbers",
			queryParams:    map[string]string{"page": "invalid", "limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with sort column outside the allowed set",
			queryParams: map[string]string{"sort_by": "data; DROP TABLE bookings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/bookings")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest, sortable...)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}
