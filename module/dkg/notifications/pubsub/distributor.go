package pubsub

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/dkg"
	dkgmodule "github.com/onflow/wallet-dkg/module/dkg"
)

type OnRoundRetiredConsumer = func(outcome *dkg.RoundOutcome)

// Distributor ingests coordinator events and distributes them to subscribers.
type Distributor struct {
	roundRetiredConsumers []OnRoundRetiredConsumer
	consumers             []dkgmodule.Consumer
	lock                  sync.RWMutex
}

var _ dkgmodule.Consumer = (*Distributor)(nil)

func NewDistributor() *Distributor {
	return &Distributor{
		roundRetiredConsumers: make([]OnRoundRetiredConsumer, 0),
		lock:                  sync.RWMutex{},
	}
}

func (p *Distributor) AddOnRoundRetiredConsumer(consumer OnRoundRetiredConsumer) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.roundRetiredConsumers = append(p.roundRetiredConsumers, consumer)
}

func (p *Distributor) AddConsumer(consumer dkgmodule.Consumer) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.consumers = append(p.consumers, consumer)
}

func (p *Distributor) OnRoundRequested(roundID uint64, requestBlock uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, consumer := range p.consumers {
		consumer.OnRoundRequested(roundID, requestBlock)
	}
}

func (p *Distributor) OnSeedDelivered(roundID uint64, seed []byte, committee []uint32) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, consumer := range p.consumers {
		consumer.OnSeedDelivered(roundID, seed, committee)
	}
}

func (p *Distributor) OnResultSubmitted(roundID uint64, resultHash common.Hash, submitter common.Address, challengeDeadline uint64) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, consumer := range p.consumers {
		consumer.OnResultSubmitted(roundID, resultHash, submitter, challengeDeadline)
	}
}

func (p *Distributor) OnResultChallenged(roundID uint64, resultHash common.Hash, challenger common.Address) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, consumer := range p.consumers {
		consumer.OnResultChallenged(roundID, resultHash, challenger)
	}
}

func (p *Distributor) OnRoundRetired(outcome *dkg.RoundOutcome) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	for _, consumer := range p.roundRetiredConsumers {
		consumer(outcome)
	}
	for _, consumer := range p.consumers {
		consumer.OnRoundRetired(outcome)
	}
}
