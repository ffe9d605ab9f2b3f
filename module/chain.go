package module

import "time"

// Chain exposes the host chain's clock. Round deadlines are expressed in
// block heights, governance delays in wall-clock time.
type Chain interface {
	BlockHeight() uint64
	BlockTime() time.Time
}
