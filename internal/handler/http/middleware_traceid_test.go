package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, traceID, line["trace_id"])
}

func TestWithTraceID_KeepsCallerID(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReplacesOversizedID(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, strings.Repeat("x", maxTraceIDLen+1))
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(traceIDHeader), 36)
}
