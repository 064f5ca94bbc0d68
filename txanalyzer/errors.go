package txanalyzer

import "errors"

var (
	ErrInvalidHash = errors.New("invalid transaction hash")
	ErrTxNotFound  = errors.New("transaction not found")
	ErrTxPending   = errors.New("transaction is still pending")
)
