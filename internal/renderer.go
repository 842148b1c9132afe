package internal

// Node is an opaque backend node reference. Its concrete type is owned by
// the Renderer that created it.
type Node = any

// Handler is the value shape of listener props ("on"-prefixed keys).
type Handler func(args ...any)

// Renderer is the backend contract the committer drives. The engine never
// inspects backend nodes; it only threads them back into renderer calls.
type Renderer interface {
	CreateNode(tag string) (Node, error)
	Insert(node, parent Node) error
	Remove(node, parent Node) error
	SetAttribute(node Node, key string, value any) error
	ClearAttribute(node Node, key string, prev any) error
	AddEventListener(node Node, event string, handler Handler) error
	RemoveEventListener(node Node, event string, handler Handler) error
}
