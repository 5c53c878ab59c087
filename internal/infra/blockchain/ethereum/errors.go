package ethereum

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrNotFound is returned when the node answers a lookup with null.
	ErrNotFound = errors.New("not found")

	// ErrTransactionPending is returned for a transaction that is not mined yet.
	ErrTransactionPending = errors.New("transaction is pending")
)

// JSON-RPC error codes nodes and providers use for load shedding.
const (
	codeLimitExceeded = -32005
	codeInternal      = -32603
)

// codeExecutionReverted is the code geth attaches to a reverted eth_call.
const codeExecutionReverted = 3

// isRevert reports whether the node executed a call and it reverted. Nodes
// that do not use codeExecutionReverted still say so in the message.
func isRevert(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeExecutionReverted {
		return true
	}

	return strings.Contains(err.Error(), "execution reverted")
}

// isTransient reports whether a failed call is worth repeating: timeouts,
// dropped connections, rate limiting and server-side failures. Reverts,
// invalid arguments and a closed client are not.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, rpc.ErrClientQuit) || errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, goethereum.NotFound) {
		// Load-balanced providers may route the lookup to a node that has not
		// seen the new head yet.
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		code := rpcErr.ErrorCode()
		return code == codeLimitExceeded || code == codeInternal
	}

	return false
}
