package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/dkg"
	"github.com/onflow/wallet-dkg/model/governance"
	"github.com/onflow/wallet-dkg/storage"
)

// Reader answers the inspector's queries from storage. It never writes.
type Reader struct {
	rounds     storage.WalletDKGRounds
	params     storage.GovernanceParameters
	requesters storage.AuthorizedRequesters
}

func NewReader(rounds storage.WalletDKGRounds, params storage.GovernanceParameters, requesters storage.AuthorizedRequesters) *Reader {
	return &Reader{
		rounds:     rounds,
		params:     params,
		requesters: requesters,
	}
}

// StateView summarizes the current round.
type StateView struct {
	RoundID  uint64 `json:"round_id"`
	State    string `json:"state"`
	Deadline uint64 `json:"deadline,omitempty"`
	TimedOut *bool  `json:"timed_out,omitempty"`
}

// ParameterView is the printable form of a governance parameter.
type ParameterView struct {
	ID                string         `json:"id"`
	Current           string         `json:"current"`
	Pending           *string        `json:"pending,omitempty"`
	ChangeInitiatedAt *time.Time     `json:"change_initiated_at,omitempty"`
	Delay             *time.Duration `json:"delay,omitempty"`
}

// State returns the state of the current round. If height is non-zero, the
// view also reports whether the round has timed out at that height.
func (r *Reader) State(height uint64) (*StateView, error) {
	round, err := r.rounds.Current()
	if err != nil {
		return nil, fmt.Errorf("could not read current round: %w", err)
	}
	view := &StateView{
		RoundID: round.ID,
		State:   round.State.String(),
	}
	switch round.State {
	case dkg.AwaitingSeed:
		view.Deadline = round.SeedDeadline()
	case dkg.AwaitingResult:
		view.Deadline = round.ResultSubmissionDeadline()
	case dkg.Challenge:
		view.Deadline = round.ApprovalDeadline()
	}
	if height > 0 {
		timedOut := round.TimedOut(height)
		view.TimedOut = &timedOut
	}
	return view, nil
}

// Round returns the full record of the current round.
func (r *Reader) Round() (*dkg.Round, error) {
	return r.rounds.Current()
}

// Parameters returns every integer governance parameter, in declaration order.
// Parameters never stored are skipped.
func (r *Reader) Parameters() ([]ParameterView, error) {
	views := make([]ParameterView, 0, len(governance.UintParameters))
	for _, id := range governance.UintParameters {
		param, err := r.params.UintParameter(id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not read parameter %s: %w", id, err)
		}
		views = append(views, newParameterView(id, param, func(v uint64) string { return fmt.Sprint(v) }))
	}
	return views, nil
}

// Governance returns the governance address parameter.
// Error returns: storage.ErrNotFound if the node never started.
func (r *Reader) Governance() (ParameterView, error) {
	param, err := r.params.AddressParameter(governance.Governance)
	if err != nil {
		return ParameterView{}, fmt.Errorf("could not read governance: %w", err)
	}
	return newParameterView(governance.Governance, param, func(a common.Address) string { return a.Hex() }), nil
}

func (r *Reader) Requesters() ([]common.Address, error) {
	return r.requesters.All()
}

// Outcome returns the archived outcome of a round.
// Error returns: storage.ErrNotFound
func (r *Reader) Outcome(roundID uint64) (*dkg.RoundOutcome, error) {
	return r.rounds.Outcome(roundID)
}

func (r *Reader) Outcomes() ([]*dkg.RoundOutcome, error) {
	return r.rounds.Outcomes()
}

func newParameterView[T any](id governance.ParameterID, param *governance.Parameter[T], format func(T) string) ParameterView {
	view := ParameterView{
		ID:      id.String(),
		Current: format(param.Current),
	}
	if param.HasPending() {
		pending := format(*param.Pending)
		initiated := *param.ChangeInitiatedAt
		delay := param.Delay
		view.Pending = &pending
		view.ChangeInitiatedAt = &initiated
		view.Delay = &delay
	}
	return view
}
