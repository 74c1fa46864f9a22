package dev

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrite(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "index.go")
	require.NoError(t, os.WriteFile(testFile, []byte("package routes"), 0644))

	w, err := NewWatcher(WatcherConfig{
		Root:     tmpDir,
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	changes := make(chan []string, 10)
	w.OnChange(func(paths []string) {
		changes <- paths
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(testFile, []byte("package routes\n"), 0644))

	select {
	case paths := <-changes:
		require.NotEmpty(t, paths)
		assert.Equal(t, testFile, paths[0])
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
	}
}

func TestWatcherPicksUpNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := NewWatcher(WatcherConfig{
		Root:     tmpDir,
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	changes := make(chan []string, 10)
	w.OnChange(func(paths []string) {
		changes <- paths
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	subDir := filepath.Join(tmpDir, "posts")
	require.NoError(t, os.Mkdir(subDir, 0755))

	// Give the watcher a moment to register the new directory.
	time.Sleep(200 * time.Millisecond)

	newFile := filepath.Join(subDir, "index.go")
	require.NoError(t, os.WriteFile(newFile, []byte("package routes"), 0644))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case paths := <-changes:
			for _, p := range paths {
				if p == newFile {
					return
				}
			}
		case <-deadline:
			t.Fatal("timeout waiting for change in new directory")
		}
	}
}

func TestWatcherIgnorePatterns(t *testing.T) {
	w, err := NewWatcher(WatcherConfig{Root: t.TempDir()})
	require.NoError(t, err)
	defer w.fsw.Close()

	assert.True(t, w.shouldIgnore("/project/src/routes/index_test.go"))
	assert.True(t, w.shouldIgnore("/project/.tuono"))
	assert.True(t, w.shouldIgnore("/project/src/routes/index.go.swp"))
	assert.False(t, w.shouldIgnore("/project/src/routes/index.go"))
	assert.False(t, w.shouldIgnore("/project/src/routes/posts/[post].go"))
}

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Wait for the server to register the client.
	require.Eventually(t, func() bool {
		return rs.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	rs.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, ReloadTypeFull, msg.Type)
}

func TestReloadServerErrorMessage(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return rs.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	rs.NotifyError("route traversal failed")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg ReloadMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, ReloadTypeError, msg.Type)
	assert.Equal(t, "route traversal failed", msg.Error)
}

func TestReloadServerDropsClosedClients(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return rs.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return rs.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestDevClientScriptEndpoint(t *testing.T) {
	assert.Contains(t, DevClientScript, ReloadEndpoint)
}
