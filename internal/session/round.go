package session

import (
	"go.uber.org/zap"

	"github.com/pondside/fishing-expedition-backend/internal/engine"
	"github.com/pondside/fishing-expedition-backend/internal/metrics"
	"github.com/pondside/fishing-expedition-backend/internal/player"
	"github.com/pondside/fishing-expedition-backend/internal/types"
)

// distribute pays the round's pool to the top-ranked players. An empty
// roster or empty pool is a normal skip: nothing is broadcast and the
// caller resets the countdown either way.
func (s *Session) distribute() {
	if s.store.Len() == 0 || s.pool == 0 {
		s.log.Debug("distribution skipped",
			zap.Int("players", s.store.Len()),
			zap.Int("pool", s.pool))
		return
	}

	ranked := s.store.Ranked()
	winnerCount := engine.WinnerCount(len(ranked))
	reward := engine.SplitPool(s.pool, winnerCount)

	winners := make([]player.View, 0, winnerCount)
	for _, w := range ranked[:winnerCount] {
		// Winners are in the store by construction; the error path is
		// unreachable here.
		credited, _ := s.store.CreditReward(w.ID, reward)
		winners = append(winners, credited.View())
	}

	s.log.Info("distribution",
		zap.Int("pool", s.pool),
		zap.Int("winners", winnerCount),
		zap.Int("reward", reward))

	metrics.DistributionsTotal.Inc()
	metrics.TokensDistributed.Add(float64(reward * winnerCount))
	s.pool = 0
	metrics.PoolSize.Set(0)

	poolAfter := 0
	s.broadcast(types.ServerMessage{
		Type:    types.MsgDistribution,
		Winners: winners,
		Reward:  &reward,
		Pool:    &poolAfter,
	})
}
