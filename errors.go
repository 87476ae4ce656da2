package tablewise

import "errors"

// Error taxonomy. Engine errors wrap one of these sentinels so callers can
// classify failures with errors.Is; the driver error stays in the chain for
// errors.As inspection.
var (
	// ErrConnection covers malformed or unreachable connection targets and
	// failures of the connect-time handshake.
	ErrConnection = errors.New("tablewise: connection failed")

	// ErrSchema covers references to tables or columns the store does not
	// have.
	ErrSchema = errors.New("tablewise: unknown table or column")

	// ErrIntegrity covers constraint violations reported by the store.
	ErrIntegrity = errors.New("tablewise: constraint violation")

	// ErrTransaction covers atomic execution failures that are not
	// constraint violations.
	ErrTransaction = errors.New("tablewise: transaction failed")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("tablewise: engine is closed")
)
