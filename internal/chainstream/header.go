package chainstream

import "github.com/ethereum/go-ethereum/common"

// Header is a new chain head announced by the node.
type Header struct {
	Hash       common.Hash // block hash
	ParentHash common.Hash // hash of the previous block
	Number     uint64      // block height
}
