package httpserver_test

import (
	"encoding/json"
	"io"
	"moviesapi/httpserver"
	"moviesapi/pkg/config"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:       "test",
		AllowOrigins: "*",
	}
}

func mustNewServer(t testing.TB, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	server, err := httpserver.New(append([]httpserver.Options{httpserver.WithConfig(testConfig())}, options...)...)
	require.NoError(t, err)
	return server
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func makeJSONRequest(server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t testing.TB, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env), "response should be a JSON envelope")
	return env
}

func decodeData(t testing.TB, env envelope, out interface{}) {
	t.Helper()
	require.NotEmpty(t, env.Data, "envelope should carry data")
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func responseKeys(t testing.TB, recorder *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
	return raw
}

func assertJSONContentType(t testing.TB, recorder *httptest.ResponseRecorder) {
	t.Helper()
	require.True(t,
		strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json"),
		"expected JSON content type, got %q", recorder.Header().Get("Content-Type"),
	)
}
