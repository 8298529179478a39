package internal

import (
	"chat-session/domain"
	"chat-session/repositories"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	testCases := []struct {
		value    string
		expected string
	}{
		{value: "", expected: ""},
		{value: "abc", expected: "***"},
		{value: "token-A", expected: "toke***"},
		{value: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9", expected: "eyJh************"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Mask(tc.value))
	}
}

func TestDebugRouter(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	req.NoError(repositories.NewCredentialRepository(db, slog.Default(), "origin").Write("token-A"))
	router := NewDebugRouter(db, func() domain.View {
		return domain.View{Authenticated: true, ServerID: "s1", ChannelID: "general"}
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/store", nil))
	req.Equal(http.StatusOK, recorder.Code)
	var rows []InspectRow
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &rows))
	req.Len(rows, 1)
	req.Equal("origin", rows[0].Origin)
	req.Equal("toke***", rows[0].Value)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/view", nil))
	var view domain.View
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &view))
	req.Equal("general", view.ChannelID)
	req.True(view.Authenticated)
}
