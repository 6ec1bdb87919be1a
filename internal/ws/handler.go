package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pondside/fishing-expedition-backend/internal/engine"
	"github.com/pondside/fishing-expedition-backend/internal/session"
	"github.com/pondside/fishing-expedition-backend/internal/types"
)

const writeTimeout = 3 * time.Second

var validate = validator.New()

// Handler upgrades a connection and bridges it to the session actor:
// one writer goroutine drains the outbox while the request goroutine
// runs the reader loop.
func Handler(s *session.Session, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan types.ServerMessage, 16)

		s.Inbox() <- session.Connect{ClientID: clientID, Outbox: out}
		defer func() { s.Inbox() <- session.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					log.Error("marshal outbound", zap.Error(err))
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Clean close and dropped connections end the same way:
				// the deferred Leave unregisters this client.
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				log.Warn("malformed frame dropped",
					zap.String("client_id", clientID),
					zap.Error(err))
				sendError(r.Context(), conn, "malformed message")
				continue
			}
			if !knownType(cm.Type) {
				// Forward-compatible no-op.
				log.Info("unknown message type", zap.String("type", cm.Type))
				continue
			}
			if err := validate.Struct(cm); err != nil {
				log.Warn("invalid frame dropped",
					zap.String("client_id", clientID),
					zap.String("type", cm.Type),
					zap.Error(err))
				sendError(r.Context(), conn, "invalid message fields")
				continue
			}

			msg, ok := toSessionMsg(clientID, cm)
			if !ok {
				sendError(r.Context(), conn, "unknown bait kind")
				continue
			}
			s.Inbox() <- msg
		}
	}
}

func knownType(t string) bool {
	switch t {
	case types.MsgJoin, types.MsgFish, types.MsgClaim, types.MsgSwap:
		return true
	default:
		return false
	}
}

func toSessionMsg(clientID string, cm types.ClientMessage) (session.Msg, bool) {
	switch cm.Type {
	case types.MsgJoin:
		return session.Join{ClientID: clientID, Identity: cm.Identity}, true
	case types.MsgFish:
		var bait *engine.Rarity
		if cm.Bait != "" {
			tier, ok := engine.ParseRarity(cm.Bait)
			if !ok {
				return nil, false
			}
			bait = &tier
		}
		return session.Fish{ClientID: clientID, Identity: cm.Identity, Bait: bait}, true
	case types.MsgClaim:
		return session.ClaimAction{ClientID: clientID, Identity: cm.Identity}, true
	case types.MsgSwap:
		return session.SwapToken{ClientID: clientID, Identity: cm.Identity}, true
	default:
		return nil, false
	}
}

func sendError(ctx context.Context, conn *websocket.Conn, message string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: types.MsgError, Error: message})
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(writeCtx, websocket.MessageText, payload)
}
