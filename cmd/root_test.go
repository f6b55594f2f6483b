package cmd

import (
	"bytes"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	config "github.com/inference-gateway/deskcast/config"
	pointer "github.com/inference-gateway/deskcast/internal/pointer"
	displayMocks "github.com/inference-gateway/deskcast/tests/mocks/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("exports variables without overriding", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "DESKCAST_DOTENV_NEW=from-file\nDESKCAST_DOTENV_SET=from-file\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		t.Setenv("DESKCAST_DOTENV_SET", "from-env")
		t.Cleanup(func() { _ = os.Unsetenv("DESKCAST_DOTENV_NEW") })

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv("DESKCAST_DOTENV_NEW"))
		assert.Equal(t, "from-env", os.Getenv("DESKCAST_DOTENV_SET"))
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "deskcast version "+version)
}

func TestNewRouter(t *testing.T) {
	cfg := config.DefaultConfig()
	fake := &displayMocks.FakeDisplayController{}
	fake.CaptureScreenReturns(image.NewRGBA(image.Rect(0, 0, 64, 32)), nil)
	server := httptest.NewServer(newRouter(cfg, "fake", pointer.NewService(cfg, fake, "fake")))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	statusResp, err := http.Get(server.URL + "/api/v1/status")
	require.NoError(t, err)
	defer func() { _ = statusResp.Body.Close() }()

	var status map[string]any
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	assert.Equal(t, "fake", status["backend"])
	assert.Equal(t, "contain", status["fit_mode"])

	frameResp, err := http.Get(server.URL + "/api/v1/frame")
	require.NoError(t, err)
	defer func() { _ = frameResp.Body.Close() }()
	assert.Equal(t, http.StatusOK, frameResp.StatusCode)
	assert.Equal(t, "image/png", frameResp.Header.Get("Content-Type"))

	missing, err := http.Get(server.URL + "/api/v1/conversations")
	require.NoError(t, err)
	defer func() { _ = missing.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
