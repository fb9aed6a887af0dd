package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "zone-less with microseconds",
			raw:  `"2025-01-02T03:04:05.123456"`,
			want: time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC),
		},
		{
			name: "zone-less without fraction",
			raw:  `"2025-01-02T03:04:05"`,
			want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset",
			raw:  `"2025-01-02T05:04:05+02:00"`,
			want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name: "rfc3339 utc",
			raw:  `"2025-01-02T03:04:05Z"`,
			want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
			assert.Equal(t, time.UTC, ts.Location())
		})
	}
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
}

func TestNote_DecodesServicePayload(t *testing.T) {
	payload := `{
		"id": 42,
		"title": "Groceries",
		"content": "milk",
		"archived": false,
		"created_at": "2025-01-02T03:04:05.123456",
		"updated_at": null
	}`

	var n Note
	require.NoError(t, json.Unmarshal([]byte(payload), &n))

	assert.Equal(t, int64(42), n.ID)
	require.NotNil(t, n.CreatedAt)
	assert.Equal(t, "2025-01-02", n.CreatedAt.Format(DateLayout))
	assert.Nil(t, n.UpdatedAt)
}

func TestTimestamp_MarshalJSON_ZoneLessUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := NewTimestamp(time.Date(2025, 1, 2, 6, 4, 5, 500000000, loc))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02T03:04:05.5"`, string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, ts.Equal(back.Time))
}
