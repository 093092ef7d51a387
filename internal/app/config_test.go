package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hbrook/galerie/internal/logging"
	"github.com/hbrook/galerie/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	t.Setenv("GALERIE_API_URL", "")
	t.Setenv("GALERIE_LINK", "")
	t.Setenv("GALERIE_LOG_LEVEL", "")
	t.Setenv("GALERIE_CACHE_TTL", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				want := config{
					APIURL:   defaultAPIURL,
					CacheTTL: 5 * time.Minute,
					loggingOptions: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"api-url: https://example.com/exhibits.json\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "https://example.com/exhibits.json", got.APIURL)
			},
		},
		{
			"config file with cache-ttl override default",
			"cache-ttl: 30s\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, 30*time.Second, got.CacheTTL)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"GALERIE_API_URL=https://example.com/a.json"},
			func(t *testing.T, got config) {
				assert.Equal(t, "https://example.com/a.json", got.APIURL)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--api-url", "https://example.com/b.json"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "https://example.com/b.json", got.APIURL)
			},
		},
		{
			"env var overrides config file",
			"api-url: https://file.example.com/\n",
			nil,
			[]string{"GALERIE_API_URL=https://env.example.com/"},
			func(t *testing.T, got config) {
				assert.Equal(t, "https://env.example.com/", got.APIURL)
			},
		},
		{
			"flag overrides both env var and config",
			"api-url: https://file.example.com/\n",
			[]string{"--api-url", "https://flag.example.com/"},
			[]string{"GALERIE_API_URL=https://env.example.com/"},
			func(t *testing.T, got config) {
				assert.Equal(t, "https://flag.example.com/", got.APIURL)
			},
		},
		{
			"set multiple mirrors",
			"",
			[]string{"-m", "https://proxy.example.com/?", "-m", "https://other.example.com/?"},
			nil,
			func(t *testing.T, got config) {
				assert.Len(t, got.Mirrors, 2)
				assert.Contains(t, got.Mirrors, "https://proxy.example.com/?")
				assert.Contains(t, got.Mirrors, "https://other.example.com/?")
			},
		},
		{
			"set link via flag",
			"",
			[]string{"--link", "?exhibit=spring&slide=2"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "?exhibit=spring&slide=2", got.Link)
			},
		},
		{
			"set log level via environment variable",
			"",
			nil,
			[]string{"GALERIE_LOG_LEVEL=debug"},
			func(t *testing.T, got config) {
				assert.Equal(t, "debug", got.loggingOptions.Level)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a
			// .galerie.yaml file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".galerie.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}
