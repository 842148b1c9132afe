package internal

import (
	"reflect"
	"strings"

	"github.com/frondlabs/frond/reactive"
)

// listenerPrefix marks listener-shaped props; the event name is the
// lowercased remainder ("onClick" binds "click").
const listenerPrefix = "on"

func isListener(key string) bool {
	return strings.HasPrefix(key, listenerPrefix)
}

func eventName(key string) string {
	return strings.ToLower(key[len(listenerPrefix):])
}

// applyProps applies the delta between two prop snapshots to a backend
// node: stale listeners are removed by previous identity, vanished
// attributes cleared, new or changed attributes set, and new or changed
// listeners added. Unchanged entries produce no backend calls.
func (e *Engine) applyProps(node Node, prev, next *reactive.Snapshot) error {
	if prev == nil {
		prev = reactive.EmptySnapshot()
	}
	if next == nil {
		next = reactive.EmptySnapshot()
	}

	// remove listeners that changed or disappeared
	for _, key := range prev.Keys() {
		if !isListener(key) {
			continue
		}
		pv, _ := prev.Get(key)
		if nv, ok := next.Get(key); ok && sameValue(pv, nv) {
			continue
		}
		h, _ := pv.(Handler)
		if err := e.renderer.RemoveEventListener(node, eventName(key), h); err != nil {
			return &BackendError{Op: "unlisten", Err: err}
		}
	}

	// clear attributes that disappeared
	for _, key := range prev.Keys() {
		if isListener(key) {
			continue
		}
		if _, ok := next.Get(key); ok {
			continue
		}
		pv, _ := prev.Get(key)
		if err := e.renderer.ClearAttribute(node, key, pv); err != nil {
			return &BackendError{Op: "clear", Err: err}
		}
	}

	// set new or changed attributes
	for _, key := range next.Keys() {
		if isListener(key) {
			continue
		}
		nv, _ := next.Get(key)
		if pv, ok := prev.Get(key); ok && sameValue(pv, nv) {
			continue
		}
		if err := e.renderer.SetAttribute(node, key, nv); err != nil {
			return &BackendError{Op: "set", Err: err}
		}
	}

	// add new or changed listeners
	for _, key := range next.Keys() {
		if !isListener(key) {
			continue
		}
		nv, _ := next.Get(key)
		if pv, ok := prev.Get(key); ok && sameValue(pv, nv) {
			continue
		}
		h, _ := nv.(Handler)
		if err := e.renderer.AddEventListener(node, eventName(key), h); err != nil {
			return &BackendError{Op: "listen", Err: err}
		}
	}

	return nil
}

// sameValue compares prop values: funcs by identity, everything else by
// deep equality.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Func || rb.Kind() == reflect.Func {
		return ra.Kind() == rb.Kind() && ra.Pointer() == rb.Pointer()
	}

	return reflect.DeepEqual(a, b)
}

func funcPtr(fn Component) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
