package frond

import "github.com/frondlabs/frond/internal"

type (
	// BackendError wraps a failed renderer operation. The pass that
	// triggered it is aborted; no rollback is attempted.
	BackendError = internal.BackendError

	// ComponentError wraps a panic raised by a component while producing
	// its child descriptor.
	ComponentError = internal.ComponentError
)

// ErrNoHostAncestor is the structural invariant violation: a commit
// traversal reached a fiber with no realized ancestor backend node. The
// committer panics with it.
var ErrNoHostAncestor = internal.ErrNoHostAncestor
