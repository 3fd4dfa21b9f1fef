package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := loadConfig(Opts{})
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 50, cfg.Feedback.DefaultLimit)
		assert.False(t, cfg.LLM.Enabled())
	})

	t.Run("file with overrides", func(t *testing.T) {
		t.Setenv("FEEDBACK_TEST_DB", "/tmp/x.db")
		cfg, err := loadConfig(Opts{Config: "testdata/config.yml", Listen: ":9999", DB: "file:other.db"})
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Listen)
		assert.Equal(t, "file:other.db", cfg.Database.DSN)
		assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 2, cfg.Feedback.Workers)
		assert.True(t, cfg.Feedback.ReclassifyOnStart)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDBACK_TEST_DB", "/data/feedback.db")
		cfg, err := loadConfig(Opts{Config: "testdata/config.yml"})
		require.NoError(t, err)
		assert.Equal(t, "file:/data/feedback.db?mode=rwc&_txlock=immediate", cfg.Database.DSN)
	})
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("FEEDBACK_TEST_DB", filepath.Join(t.TempDir(), "feedback.db"))
	port := freePort(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: "testdata/config.yml", Listen: fmt.Sprintf("127.0.0.1:%d", port)})
	}()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	// submit feedback and read it back through the stats endpoint
	resp, err := http.Post(base+"/api/v1/feedback", "application/json",
		strings.NewReader(`{"user_id":"u1","subject":"keynote","message":"Great talk, very helpful","rating":4}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"sentiment":"positive"`)

	resp, err = http.Get(base + "/api/v1/feedback/stats")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"positive":1`)

	// digest is not configured in test config
	resp, err = http.Get(base + "/api/v1/events/1/digest")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	cancel()
	select {
	case err := <-serverErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}
}
