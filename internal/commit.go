package internal

// commitRoot applies the finished work-in-progress tree to the backend in
// one uninterrupted FIFO traversal: deletions first, then the root's child.
// Enqueueing a fiber's child and sibling only after the fiber itself is
// processed guarantees a parent's backend node is in place before any
// descendant mutation. Afterwards the work-in-progress root is promoted to
// current.
func (e *Engine) commitRoot() error {
	queue := make([]*Fiber, 0, len(e.deletions)+1)
	queue = append(queue, e.deletions...)
	e.deletions = e.deletions[:0]
	queue = append(queue, e.wipRoot.child)

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if f == nil {
			continue
		}

		if err := e.commitWork(f); err != nil {
			return err
		}

		if f.effect == EffectDeletion {
			// a deleted fiber's links lead back into the old tree
			continue
		}
		queue = append(queue, f.child, f.sibling)
	}

	e.currentRoot = e.wipRoot
	e.wipRoot = nil
	return nil
}

// commitWork applies one fiber's tagged effect to the backend tree.
func (e *Engine) commitWork(f *Fiber) error {
	parent := f.parent
	for parent != nil && parent.node == nil {
		parent = parent.parent
	}
	if parent == nil {
		panic(ErrNoHostAncestor)
	}
	parentNode := parent.node

	switch {
	case f.effect == EffectPlacement && f.node != nil:
		if err := e.renderer.Insert(f.node, parentNode); err != nil {
			return &BackendError{Op: "insert", Err: err}
		}

	case f.effect == EffectUpdate && f.node != nil:
		prev := f.alternate.snapshot
		if err := e.applyProps(f.node, prev, f.snapshot); err != nil {
			return err
		}

	case f.effect == EffectDeletion:
		if err := e.commitDeletion(f, parentNode); err != nil {
			return err
		}
	}

	return nil
}

// commitDeletion removes the fiber's backend node, or recursively its
// nearest descendant's when the fiber owns none (component fibers),
// detaching ownership as it goes.
func (e *Engine) commitDeletion(f *Fiber, parentNode Node) error {
	if f == nil {
		return nil
	}

	if f.node != nil {
		if err := e.renderer.Remove(f.node, parentNode); err != nil {
			return &BackendError{Op: "remove", Err: err}
		}
		f.node = nil
	} else if err := e.commitDeletion(f.child, parentNode); err != nil {
		return err
	}

	f.watch.Release()
	f.watch = nil
	f.child = nil
	return nil
}
