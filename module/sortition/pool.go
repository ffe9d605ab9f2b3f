package sortition

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/onflow/wallet-dkg/module"
)

var (
	// ErrPoolLocked is returned when the pool is modified or locked while locked.
	ErrPoolLocked = errors.New("sortition pool is locked")
	// ErrPoolUnlocked is returned when selecting from or unlocking an unlocked pool.
	ErrPoolUnlocked = errors.New("sortition pool is not locked")
	// ErrUnknownMember is returned for member IDs that never joined the pool.
	ErrUnknownMember = errors.New("unknown sortition pool member")
)

// Pool is an in-memory sortition pool. Members are numbered from 1 in join
// order. Committee selection is a seeded partial Fisher-Yates shuffle driven
// by Keccak-256, so any party holding the seed reproduces the committee.
type Pool struct {
	mu        sync.Mutex
	log       zerolog.Logger
	operators []common.Address
	members   map[common.Address]uint32
	locked    bool
}

var _ module.SortitionPool = (*Pool)(nil)

func NewPool(log zerolog.Logger) *Pool {
	return &Pool{
		log:     log.With().Str("component", "sortition_pool").Logger(),
		members: make(map[common.Address]uint32),
	}
}

// Join adds an operator to the pool and returns its member ID. Joining twice
// returns the existing ID.
// Expected errors:
//   - ErrPoolLocked if a round is in progress
func (p *Pool) Join(operator common.Address) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.locked {
		return 0, ErrPoolLocked
	}
	if id, ok := p.members[operator]; ok {
		return id, nil
	}
	p.operators = append(p.operators, operator)
	id := uint32(len(p.operators))
	p.members[operator] = id
	p.log.Debug().Uint32("member_id", id).Str("operator", operator.Hex()).Msg("operator joined pool")
	return id, nil
}

// Size returns the number of members in the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.operators)
}

func (p *Pool) Lock() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.locked {
		return ErrPoolLocked
	}
	p.locked = true
	p.log.Debug().Msg("pool locked")
	return nil
}

func (p *Pool) Unlock() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.locked {
		return ErrPoolUnlocked
	}
	p.locked = false
	p.log.Debug().Msg("pool unlocked")
	return nil
}

func (p *Pool) IsLocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locked
}

func (p *Pool) OperatorOf(memberID uint32) (common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if memberID < 1 || int(memberID) > len(p.operators) {
		return common.Address{}, fmt.Errorf("member %d: %w", memberID, ErrUnknownMember)
	}
	return p.operators[memberID-1], nil
}

// SelectCommittee draws size distinct members using seed. The pool must be
// locked so that the candidate set cannot change between selection and
// result validation.
func (p *Pool) SelectCommittee(seed []byte, size uint32) ([]uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.locked {
		return nil, ErrPoolUnlocked
	}
	if int(size) > len(p.operators) {
		return nil, fmt.Errorf("cannot select %d members from a pool of %d", size, len(p.operators))
	}

	candidates := make([]uint32, len(p.operators))
	for i := range candidates {
		candidates[i] = uint32(i + 1)
	}

	var counter [8]byte
	for i := 0; i < int(size); i++ {
		binary.BigEndian.PutUint64(counter[:], uint64(i))
		draw := crypto.Keccak256(seed, counter[:])
		remaining := uint64(len(candidates) - i)
		j := i + int(binary.BigEndian.Uint64(draw[:8])%remaining)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:size], nil
}
