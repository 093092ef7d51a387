package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/hbrook/galerie/internal/logging"
	"github.com/stretchr/testify/require"
)

const exhibitsJSON = `[
	{
		"id": "spring",
		"title": "Spring Light",
		"subtitle": "April in the orchard",
		"covers": [
			{
				"url": "https://img.example.com/spring/cover.jpg",
				"palette": {"vibrant": {"background": "#aa3311", "foreground": "#ffffff"}}
			}
		],
		"gallery": [
			{
				"title": "Blossom",
				"image": {
					"url": "https://img.example.com/spring/1.jpg",
					"width": 4000, "height": 3000,
					"palette": {"vibrant": {"background": "#ff0000", "foreground": "#ffffff"}}
				}
			},
			{
				"title": "Meadow",
				"image": {
					"url": "https://img.example.com/spring/2.jpg",
					"palette": {"vibrant": {"background": "#00ff00", "foreground": "#101010"}}
				}
			},
			{
				"title": "Dusk",
				"image": {
					"url": "https://img.example.com/spring/3.jpg",
					"palette": {"vibrant": {"background": "#0000ff", "foreground": "#ffffff"}}
				}
			}
		]
	},
	{
		"id": "winter",
		"title": "Winter Silence",
		"gallery": [
			{
				"image": {"url": "https://img.example.com/winter/1.jpg"}
			}
		]
	}
]`

type setupOption func(*config)

func withLink(link string) setupOption {
	return func(cfg *config) {
		cfg.Link = link
	}
}

func setup(t *testing.T, sopts ...setupOption) *teatest.TestModel {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, exhibitsJSON)
	}))
	t.Cleanup(srv.Close)

	cfg := config{
		APIURL: srv.URL,
		loggingOptions: logging.Options{
			Level: "debug",
			AdditionalWriters: []io.Writer{
				&testLogger{t},
			},
		},
	}
	for _, fn := range sopts {
		fn(&cfg)
	}

	// Cancel context once test finishes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	a, m, err := newApp(cfg)
	require.NoError(t, err)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(100, 50),
	)
	cleanup := a.start(ctx, tm)
	t.Cleanup(cleanup)
	t.Cleanup(func() {
		tm.Quit()
	})
	return tm
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(string(b))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}
