package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpAdapter "github.com/aretw0/motif/internal/adapters/http"
	"github.com/aretw0/motif/internal/protocol"
	"github.com/aretw0/motif/internal/store"
	"github.com/aretw0/motif/pkg/adapters/memory"
	"github.com/aretw0/motif/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.Shape, *httpAdapter.Hub) {
	t.Helper()

	logo := memory.NewShape("s1", "Logo")
	sceneGraph := memory.NewScene(memory.NewFrame("f1", "Intro", logo))

	hub := httpAdapter.NewHub()
	host := protocol.NewHost(
		store.New(memory.NewStore()),
		sceneGraph,
		protocol.WithNotifier(hub),
	)

	srv := httptest.NewServer(httpAdapter.NewHandler(host, hub))
	t.Cleanup(srv.Close)
	return srv, logo, hub
}

func postMessage(t *testing.T, srv *httptest.Server, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/message", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_LoadFrames(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := postMessage(t, srv, map[string]any{"type": "load-frames"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var event protocol.FramesLoadedEvent
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&event))
	assert.Equal(t, protocol.MsgFramesLoaded, event.Type)
	require.Len(t, event.Frames, 1)
	assert.Equal(t, "Intro", event.Frames[0].Name)
}

func TestServer_CreateAndPreview(t *testing.T) {
	srv, logo, _ := newTestServer(t)

	resp := postMessage(t, srv, map[string]any{
		"type": "create-animation-group",
		"animationGroup": map[string]any{
			"id":         "g-1",
			"layerNames": []string{"Logo"},
			"easing":     "linear",
			"keyframes": []map[string]any{
				{"id": "k0", "layerId": "s1", "time": 0, "properties": map[string]any{"opacity": 0.0}},
				{"id": "k1", "layerId": "s1", "time": 2, "properties": map[string]any{"opacity": 1.0}},
			},
		},
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp = postMessage(t, srv, map[string]any{
		"type":        "preview-animation",
		"previewTime": 1.0,
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.InDelta(t, 0.5, logo.Opacity(), 1e-9)
}

func TestServer_UnknownMessage(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := postMessage(t, srv, map[string]any{"type": "mystery"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_ExportNotImplemented(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := postMessage(t, srv, map[string]any{"type": "export-animation"})
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestServer_HandlerFailureStaysAccepted(t *testing.T) {
	// A storage miss is reported on the notification stream, not the
	// response: the command stays fire-and-forget.
	srv, _, _ := newTestServer(t)
	resp := postMessage(t, srv, map[string]any{
		"type":           "update-keyframe",
		"animationGroup": map[string]any{"id": "ghost"},
		"keyframe":       map[string]any{"id": "k1", "properties": map[string]any{}},
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestServer_InvalidBody(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Post(srv.URL+"/message", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHub_NotifyReachesSubscribers(t *testing.T) {
	hub := httpAdapter.NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	hub.Notify(context.Background(), domain.Notification{
		Level:     domain.NotifyInfo,
		Message:   "Created animation group for 2 layers",
		Timestamp: time.Now(),
	})

	select {
	case data := <-events:
		var event map[string]any
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "notification", event["type"])
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestHub_UnsubscribedClientIsDropped(t *testing.T) {
	hub := httpAdapter.NewHub()
	events, cancel := hub.Subscribe()
	cancel()

	hub.Publish(map[string]any{"type": "notification"})

	select {
	case _, ok := <-events:
		assert.False(t, ok, "closed or empty channel expected")
	default:
		// Nothing delivered: also fine.
	}
}
