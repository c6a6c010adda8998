package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/suggest"
)

func TestSuggestSummary(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doJSON(t, srv.Handler(), "POST", "/suggest/summary",
		map[string]string{"jobTitle": "Frontend Engineer"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var suggestions []suggest.Suggestion
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0].Summary, "Frontend Engineer")
}

func TestSuggestSummaryRequiresJobTitle(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doJSON(t, srv.Handler(), "POST", "/suggest/summary", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSuggestSummaryUnconfigured(t *testing.T) {
	srv := newMemoryOnlyServer(t)

	rr := doJSON(t, srv.Handler(), "POST", "/suggest/summary",
		map[string]string{"jobTitle": "Frontend Engineer"}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
