package internal

import (
	"chat-session/domain"
	"chat-session/repositories"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

type ViewProvider func() domain.View

type InspectRow struct {
	Origin   string    `json:"origin"`
	Value    string    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// Mask keeps the first four characters of a secret.
func Mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", min(len(value)-4, 12))
}

// NewDebugRouter exposes the live session view and the credential store, masked.
func NewDebugRouter(db *badger.DB, view ViewProvider) http.Handler {
	r := chi.NewRouter()
	r.Get("/debug/view", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, view())
	})
	r.Get("/debug/store", func(w http.ResponseWriter, _ *http.Request) {
		credentials, err := repositories.ListCredentials(db)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, lo.Map(credentials, func(c repositories.StoredCredential, _ int) InspectRow {
			return InspectRow{Origin: c.Origin, Value: Mask(c.Value), StoredAt: c.StoredAt}
		}))
	})
	return r
}

// StartDebugServer serves handler on localhost until ctx is done.
func StartDebugServer(ctx context.Context, port int, handler http.Handler, log *slog.Logger) {
	server := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	go func() {
		log.Info("Debug server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Debug server stopped", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
