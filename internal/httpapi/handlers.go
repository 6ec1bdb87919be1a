package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pondside/fishing-expedition-backend/internal/session"
)

const viewTimeout = 2 * time.Second

// Leaderboard reports the ranked roster with the pool and countdown,
// read race-free through the session actor.
func Leaderboard(s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan session.View, 1)
		s.Inbox() <- session.GetView{Reply: reply}

		select {
		case v := <-reply:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(v)
		case <-time.After(viewTimeout):
			http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		}
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
