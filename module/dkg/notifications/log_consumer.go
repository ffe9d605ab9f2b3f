package notifications

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/model/dkg"
	dkgmodule "github.com/onflow/wallet-dkg/module/dkg"
)

// LogConsumer is an implementation of the notifications consumer that logs a
// message for each event.
type LogConsumer struct {
	log zerolog.Logger
}

var _ dkgmodule.Consumer = (*LogConsumer)(nil)

func NewLogConsumer(log zerolog.Logger) *LogConsumer {
	lc := &LogConsumer{
		log: log,
	}
	return lc
}

func (lc *LogConsumer) OnRoundRequested(roundID uint64, requestBlock uint64) {
	lc.log.Info().
		Uint64("round_id", roundID).
		Uint64("request_block", requestBlock).
		Msg("round requested")
}

func (lc *LogConsumer) OnSeedDelivered(roundID uint64, seed []byte, committee []uint32) {
	lc.log.Info().
		Uint64("round_id", roundID).
		Hex("seed", seed).
		Int("committee_size", len(committee)).
		Msg("seed delivered")
}

func (lc *LogConsumer) OnResultSubmitted(roundID uint64, resultHash common.Hash, submitter common.Address, challengeDeadline uint64) {
	lc.log.Info().
		Uint64("round_id", roundID).
		Hex("result_hash", resultHash[:]).
		Hex("submitter", submitter[:]).
		Uint64("challenge_deadline", challengeDeadline).
		Msg("result submitted")
}

func (lc *LogConsumer) OnResultChallenged(roundID uint64, resultHash common.Hash, challenger common.Address) {
	lc.log.Warn().
		Uint64("round_id", roundID).
		Hex("result_hash", resultHash[:]).
		Hex("challenger", challenger[:]).
		Msg("result challenged")
}

func (lc *LogConsumer) OnRoundRetired(outcome *dkg.RoundOutcome) {
	entry := lc.log.Info().
		Uint64("round_id", outcome.RoundID).
		Str("outcome", outcome.Outcome.String()).
		Uint32("challenges", outcome.Challenges).
		Uint64("retired_at", outcome.RetiredAtBlock)

	if outcome.ResultHash != nil {
		entry.Hex("result_hash", outcome.ResultHash[:])
	}

	entry.Msg("round retired")
}
