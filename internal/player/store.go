package player

import (
	"errors"
	"sort"

	"github.com/pondside/fishing-expedition-backend/internal/engine"
)

var (
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrInvalidBait        = errors.New("selected bait not in inventory")
)

const (
	startingActionTokens = 10
	startingRewardTokens = 10
)

// Player is one participant's authoritative record. Records are created
// on first join and live until process shutdown.
type Player struct {
	ID            string
	Inventory     map[engine.Rarity]int
	ActionBalance int
	RewardBalance int

	joinSeq int // distribution tie-break: earlier joiners rank first
}

// View is the wire-facing projection of a player.
type View struct {
	ID            string                `json:"id"`
	Inventory     map[engine.Rarity]int `json:"inventory"`
	ActionBalance int                   `json:"action_balance"`
	RewardBalance int                   `json:"reward_balance"`
	Score         int                   `json:"score"`
}

func (p *Player) View() View {
	inv := make(map[engine.Rarity]int, len(p.Inventory))
	for tier, count := range p.Inventory {
		inv[tier] = count
	}
	return View{
		ID:            p.ID,
		Inventory:     inv,
		ActionBalance: p.ActionBalance,
		RewardBalance: p.RewardBalance,
		Score:         engine.Score(p.Inventory),
	}
}

// Store maps identity to player record. It is not internally locked:
// the session actor goroutine is its single writer and reader.
type Store struct {
	players map[string]*Player
	nextSeq int
}

func NewStore() *Store {
	return &Store{players: make(map[string]*Player)}
}

// GetOrCreate returns the record for id, creating it with default
// balances on first contact. Joins with a known id reconnect to the
// existing record.
func (s *Store) GetOrCreate(id string) *Player {
	if p, ok := s.players[id]; ok {
		return p
	}
	p := &Player{
		ID:            id,
		Inventory:     make(map[engine.Rarity]int),
		ActionBalance: startingActionTokens,
		RewardBalance: startingRewardTokens,
		joinSeq:       s.nextSeq,
	}
	s.nextSeq++
	s.players[id] = p
	return p
}

// Get returns the record for id or ErrUnknownPlayer.
func (s *Store) Get(id string) (*Player, error) {
	p, ok := s.players[id]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return p, nil
}

// ApplyCatch settles one gathering attempt: one action token is spent,
// the caught tier is added, and the consumed bait (when any) is removed.
// Both requirements are checked before any mutation, so a failed apply
// changes nothing.
func (s *Store) ApplyCatch(id string, caught engine.Rarity, bait *engine.Rarity) (*Player, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.ActionBalance < 1 {
		return nil, ErrInsufficientTokens
	}
	if bait != nil && p.Inventory[*bait] < 1 {
		return nil, ErrInvalidBait
	}

	p.ActionBalance--
	p.Inventory[caught]++
	if bait != nil {
		p.Inventory[*bait]--
		if p.Inventory[*bait] == 0 {
			delete(p.Inventory, *bait)
		}
	}
	return p, nil
}

// CreditReward grants reward tokens, from a distribution or a direct
// claim. No upper bound.
func (s *Store) CreditReward(id string, amount int) (*Player, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	p.RewardBalance += amount
	return p, nil
}

// ClaimAction grants one action token.
func (s *Store) ClaimAction(id string) (*Player, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	p.ActionBalance++
	return p, nil
}

// SwapToken converts one action token into one reward token.
func (s *Store) SwapToken(id string) (*Player, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.ActionBalance < 1 {
		return nil, ErrInsufficientTokens
	}
	p.ActionBalance--
	p.RewardBalance++
	return p, nil
}

func (s *Store) Len() int { return len(s.players) }

// Ranked returns every player ordered by score descending, ties broken
// by join order. The sort is fully deterministic and never depends on
// map iteration order.
func (s *Store) Ranked() []*Player {
	ranked := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		ranked = append(ranked, p)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := engine.Score(ranked[i].Inventory), engine.Score(ranked[j].Inventory)
		if si != sj {
			return si > sj
		}
		return ranked[i].joinSeq < ranked[j].joinSeq
	})
	return ranked
}

// Views returns the roster as wire projections in ranked order.
func (s *Store) Views() []View {
	ranked := s.Ranked()
	views := make([]View, 0, len(ranked))
	for _, p := range ranked {
		views = append(views, p.View())
	}
	return views
}
