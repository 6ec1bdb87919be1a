package types

import "github.com/pondside/fishing-expedition-backend/internal/player"

// Message type discriminators, client to server.
const (
	MsgJoin  = "join"
	MsgFish  = "fish"
	MsgClaim = "claim"
	MsgSwap  = "swap"
)

// Message type discriminators, server to client.
const (
	MsgUpdate       = "update"
	MsgCountdown    = "countdown"
	MsgDistribution = "distribution"
	MsgError        = "error"
)

// ClientMessage is one inbound frame. Validation tags are enforced by
// the connection layer before dispatch.
type ClientMessage struct {
	Type     string `json:"type" validate:"required,oneof=join fish claim swap"`
	Identity string `json:"identity" validate:"required,max=64"`
	Bait     string `json:"bait,omitempty" validate:"omitempty,oneof=common uncommon rare super_rare epic legendary mythical"`
}

// ServerMessage is one outbound frame. Only the fields of the given
// Type are populated.
type ServerMessage struct {
	Type    string        `json:"type"`
	Player  *player.View  `json:"player,omitempty"`  // update: the acting player
	Roster  []player.View `json:"roster,omitempty"`  // update: aggregate broadcast
	Time    *int          `json:"time,omitempty"`    // countdown
	Winners []player.View `json:"winners,omitempty"` // distribution
	Reward  *int          `json:"reward,omitempty"`  // distribution: per-winner amount
	Pool    *int          `json:"pool,omitempty"`    // distribution: pool after payout, always 0
	Error   string        `json:"error,omitempty"`
}
