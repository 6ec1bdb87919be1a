package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pondside/fishing-expedition-backend/internal/engine"
	"github.com/pondside/fishing-expedition-backend/internal/metrics"
	"github.com/pondside/fishing-expedition-backend/internal/player"
	"github.com/pondside/fishing-expedition-backend/internal/types"
)

type Msg interface{ isSessionMsg() }

// Connect registers a connection's outbox so it receives broadcasts.
// The current countdown is pushed immediately.
type Connect struct {
	ClientID string
	Outbox   chan types.ServerMessage
}

// Join binds an identity to a connection, creating the player record on
// first contact. The player's full state is sent to this client only.
type Join struct {
	ClientID string
	Identity string
}

// Fish is one gathering attempt. Bait carries the client's semantic
// intent only; every balance and inventory delta is computed here.
type Fish struct {
	ClientID string
	Identity string
	Bait     *engine.Rarity
}

// ClaimAction grants the requester one action token.
type ClaimAction struct {
	ClientID string
	Identity string
}

// SwapToken converts one of the requester's action tokens into a
// reward token.
type SwapToken struct {
	ClientID string
	Identity string
}

type Leave struct{ ClientID string }

// GetView reflects internal state without data races, for tests and
// the leaderboard endpoint.
type GetView struct {
	Reply chan View
}

type Shutdown struct{}

func (Connect) isSessionMsg()     {}
func (Join) isSessionMsg()        {}
func (Fish) isSessionMsg()        {}
func (ClaimAction) isSessionMsg() {}
func (SwapToken) isSessionMsg()   {}
func (Leave) isSessionMsg()       {}
func (GetView) isSessionMsg()     {}
func (Shutdown) isSessionMsg()    {}

type View struct {
	Countdown  int           `json:"countdown"`
	Pool       int           `json:"pool"`
	NumClients int           `json:"-"`
	Roster     []player.View `json:"roster"`
}

type Config struct {
	RoundTicks int           // countdown start value
	TickEvery  time.Duration // wall-clock length of one tick
}

// Session is the authoritative coordinator: it owns the player store,
// the reward pool and the round countdown, and is their only reader
// and writer. All access goes through the inbox, one message at a time,
// so catches, claims and distributions never interleave.
type Session struct {
	inbox     chan Msg
	store     *player.Store
	resolver  *engine.Resolver
	pool      int
	countdown int
	clients   map[string]chan types.ServerMessage
	cfg       Config
	log       *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

func New(parent context.Context, cfg Config, resolver *engine.Resolver, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		inbox:     make(chan Msg, 64),
		store:     player.NewStore(),
		resolver:  resolver,
		countdown: cfg.RoundTicks,
		clients:   make(map[string]chan types.ServerMessage),
		cfg:       cfg,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
	}
	go s.loop()
	return s
}

// Inbox exposes the actor's message channel to the connection layer and
// tests.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

func (s *Session) loop() {
	ticker := time.NewTicker(s.cfg.TickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case <-ticker.C:
			s.tick()

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Connect:
				s.clients[msg.ClientID] = msg.Outbox
				metrics.ConnectedClients.Set(float64(len(s.clients)))
				s.sendTo(msg.ClientID, countdownMsg(s.countdown))

			case Join:
				p := s.store.GetOrCreate(msg.Identity)
				s.log.Info("player joined",
					zap.String("identity", msg.Identity),
					zap.String("client_id", msg.ClientID))
				s.sendTo(msg.ClientID, updateMsg(p.View()))

			case Fish:
				s.handleFish(msg)

			case ClaimAction:
				s.replyWithPlayer(msg.ClientID, func() (*player.Player, error) {
					return s.store.ClaimAction(msg.Identity)
				})

			case SwapToken:
				s.replyWithPlayer(msg.ClientID, func() (*player.Player, error) {
					return s.store.SwapToken(msg.Identity)
				})

			case Leave:
				// Close the outbox so the connection's writer goroutine
				// exits; the drop paths already remove closed channels
				// from the map, so no double close is possible here.
				if ch, ok := s.clients[msg.ClientID]; ok {
					close(ch)
					delete(s.clients, msg.ClientID)
				}
				metrics.ConnectedClients.Set(float64(len(s.clients)))

			case GetView:
				msg.Reply <- View{
					Countdown:  s.countdown,
					Pool:       s.pool,
					NumClients: len(s.clients),
					Roster:     s.store.Views(),
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

// tick advances the countdown by one unit and broadcasts the remaining
// time. When the countdown has run out it runs at most one distribution
// and unconditionally resets, whether or not anything was paid out.
func (s *Session) tick() {
	if s.countdown > 0 {
		s.countdown--
	} else {
		s.distribute()
		s.countdown = s.cfg.RoundTicks
	}
	s.broadcast(countdownMsg(s.countdown))
}

func (s *Session) handleFish(msg Fish) {
	caught := s.resolver.Resolve(msg.Bait)

	p, err := s.store.ApplyCatch(msg.Identity, caught, msg.Bait)
	if err != nil {
		metrics.CatchFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		s.log.Debug("fish rejected",
			zap.String("identity", msg.Identity),
			zap.Error(err))
		s.sendTo(msg.ClientID, errorMsg(err))
		return
	}

	s.pool++
	metrics.CatchesTotal.WithLabelValues(string(caught)).Inc()
	metrics.PoolSize.Set(float64(s.pool))
	s.log.Info("catch",
		zap.String("identity", msg.Identity),
		zap.String("tier", string(caught)),
		zap.Int("pool", s.pool))

	s.sendTo(msg.ClientID, updateMsg(p.View()))
	s.broadcast(rosterMsg(s.store.Views()))
}

func (s *Session) replyWithPlayer(clientID string, op func() (*player.Player, error)) {
	p, err := op()
	if err != nil {
		s.sendTo(clientID, errorMsg(err))
		return
	}
	s.sendTo(clientID, updateMsg(p.View()))
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
	metrics.ConnectedClients.Set(0)
	s.cancel()
}

// sendTo delivers to one client; a client with a full outbox is dropped
// rather than allowed to stall the actor.
func (s *Session) sendTo(clientID string, msg types.ServerMessage) {
	ch, ok := s.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		close(ch)
		delete(s.clients, clientID)
		metrics.ConnectedClients.Set(float64(len(s.clients)))
	}
}

func (s *Session) broadcast(msg types.ServerMessage) {
	for id, ch := range s.clients {
		select {
		case ch <- msg:
		default:
			close(ch)
			delete(s.clients, id)
			metrics.ConnectedClients.Set(float64(len(s.clients)))
		}
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, player.ErrInsufficientTokens):
		return "insufficient_tokens"
	case errors.Is(err, player.ErrInvalidBait):
		return "invalid_bait"
	case errors.Is(err, player.ErrUnknownPlayer):
		return "unknown_player"
	default:
		return "other"
	}
}

func countdownMsg(remaining int) types.ServerMessage {
	t := remaining
	return types.ServerMessage{Type: types.MsgCountdown, Time: &t}
}

func updateMsg(v player.View) types.ServerMessage {
	return types.ServerMessage{Type: types.MsgUpdate, Player: &v}
}

func rosterMsg(roster []player.View) types.ServerMessage {
	return types.ServerMessage{Type: types.MsgUpdate, Roster: roster}
}

func errorMsg(err error) types.ServerMessage {
	return types.ServerMessage{Type: types.MsgError, Error: err.Error()}
}
