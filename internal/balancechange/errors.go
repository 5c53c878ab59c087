package balancechange

import "errors"

var (
	// ErrContractCall marks a failed balanceOf, symbol or decimals call. It
	// only costs the affected TokenChange.
	ErrContractCall = errors.New("contract call failed")

	// ErrCallReverted is wrapped by ChainReader.CallContract when the node
	// executed the call and it reverted. Retrying such a call returns the
	// same answer.
	ErrCallReverted = errors.New("contract call reverted")

	// ErrMalformedLog marks a Transfer log whose topics or data cannot be decoded.
	ErrMalformedLog = errors.New("malformed transfer log")

	// ErrNotReconstructable is returned for categories that produce no events.
	ErrNotReconstructable = errors.New("transaction category produces no balance change")
)
