package internal

import (
	"errors"
	"fmt"
)

// ErrNoHostAncestor means a commit traversal reached a fiber whose ancestor
// chain holds no realized backend node. Unreachable when the tree invariants
// hold; the committer panics with it as a programmer error.
var ErrNoHostAncestor = errors.New("frond: fiber has no ancestor with a realized backend node")

// BackendError wraps a failed renderer operation. The commit (or render
// pass) that triggered it is aborted; no rollback is attempted.
type BackendError struct {
	Op  string // "create", "insert", "remove", "set", "clear", "listen", "unlisten"
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("frond: backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// ComponentError wraps a panic raised by a component while producing its
// child descriptor. The in-flight pass is aborted and the error propagates
// to the render caller.
type ComponentError struct {
	Recovered any
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("frond: component panicked: %v", e.Recovered)
}
