package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIRootResolver_Configured(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "http://ignored:1")

	r, err := newAPIRootResolver("notes.example.com:8080/", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://notes.example.com:8080/api/v1", r.Resolve())
}

func TestAPIRootResolver_FromEnv(t *testing.T) {
	r, err := newAPIRootResolver("", logger.Nop())
	require.NoError(t, err)

	t.Setenv(config.EnvAPIURL, "https://a.example.com")
	assert.Equal(t, "https://a.example.com/api/v1", r.Resolve())

	t.Setenv(config.EnvAPIURL, "https://b.example.com/")
	assert.Equal(t, "https://b.example.com/api/v1", r.Resolve())
}

func TestAPIRootResolver_FallbackWarnsOnce(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	var buf bytes.Buffer

	r, err := newAPIRootResolver("", logger.New("test", &buf))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:10000/api/v1", r.Resolve())
	assert.Equal(t, "http://localhost:10000/api/v1", r.Resolve())

	assert.Equal(t, 1, strings.Count(buf.String(), "using the default API origin"))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestAPIRootResolver_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "://bad")

	r, err := newAPIRootResolver("", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:10000/api/v1", r.Resolve())
}

func TestNormalizeOrigin(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: " https://notes.example.com/ ", want: "https://notes.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeOrigin(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
