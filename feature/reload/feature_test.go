package reload_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wasm-player-server/core/loader"
	"wasm-player-server/core/server"
	"wasm-player-server/feature/reload"
	"wasm-player-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature_DisabledByDefault(t *testing.T) {
	cfg := server.Config{Root: t.TempDir()}
	f := reload.NewFeature(cfg, zap.NewNop())
	assert.False(t, f.IsEnabled())

	cfg.LiveReload = true
	f = reload.NewFeature(cfg, zap.NewNop())
	assert.True(t, f.IsEnabled())
}

// Loads reload and static together the way the serve command does and
// checks that the events route is reachable next to the file catch-all.
func TestFeature_EventsAlongsideStatic(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "demo.html"), []byte("<html>demo</html>"), 0o644))

	cfg := server.Config{
		Port:        8000,
		MaxAttempts: 10,
		Root:        root,
		AssetDir:    "wasm-lib",
		LiveReload:  true,
	}

	app := fiber.New()
	mgr := loader.NewManager(zap.NewNop())
	rf := reload.NewFeature(cfg, zap.NewNop())
	mgr.Register(rf)
	mgr.Register(static.NewFeature(cfg, zap.NewNop()))
	assert.NoError(t, mgr.LoadAll(app))
	defer mgr.CloseAll()

	// The event stream only ends once the feature shuts down, so close
	// it shortly after the request subscribes.
	type result struct {
		resp *http.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := app.Test(httptest.NewRequest("GET", "/events", nil), 5000)
		done <- result{resp, err}
	}()

	time.Sleep(200 * time.Millisecond)
	assert.NoError(t, rf.Close())

	select {
	case res := <-done:
		assert.NoError(t, res.err)
		assert.Equal(t, 200, res.resp.StatusCode)
		assert.Equal(t, "text/event-stream", res.resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(res.resp.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), "data: connected")
	case <-time.After(10 * time.Second):
		t.Fatal("/events request never completed")
	}

	// The file catch-all still serves next to the events route
	resp, err := app.Test(httptest.NewRequest("GET", "/demo.html", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "<html>demo</html>", string(body))
}
