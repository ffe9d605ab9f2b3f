package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/wallet-dkg/model/governance"
)

const (

	// codes for the wallet creation state machine
	codeWalletDKGRound = 10 // the single current round record
	codeRoundOutcome   = 11 // archived outcomes of retired rounds, by round ID

	// codes for governance
	codeGovernanceParameter = 20 // timelocked parameters, by parameter ID
	codeAuthorizedRequester = 21 // requester allow-list, one key per address
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case governance.ParameterID:
		return []byte(i)
	case common.Address:
		return i.Bytes()
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
