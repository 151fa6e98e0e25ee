package core

// DestructionCallback is a zero-argument cleanup action associated with a
// named scoped object, run when the scope (or that object) is torn down.
//
// A returned error is logged by the store and never aborts the teardown of
// other callbacks. Implementations that should survive a snapshot/restore
// round trip must be named, gob-encodable types; plain function adapters are
// dropped from snapshots.
type DestructionCallback interface {
	Run() error
}

// CallbackFunc adapts a plain function to the DestructionCallback interface.
type CallbackFunc func() error

// Run invokes the wrapped function.
func (f CallbackFunc) Run() error { return f() }
