/*
Package tree defines the contract nodeconf expects from the hierarchical node
tree it stores values in.

The tree is owned by someone else. nodeconf only creates value nodes, parents
them under its root, reads and writes their Value slot, enumerates children
and destroys nodes it deletes:

	type Node interface {
	    Name() string
	    SetName(name string)
	    Parent() Node
	    SetParent(parent Node) error
	    Kind() Kind
	    IsA(kind Kind) bool
	    Value() any
	    SetValue(v any) error
	    Children() []Node
	    Destroy()
	    FullName() string
	    Subscribe(fn Listener) (unsubscribe func())
	}

Value slots by kind:

	BoolValue     bool
	NumberValue   float64
	IntValue      int64
	StringValue   string
	ObjectValue   Node (or nil)
	Vector3Value  Vector3
	Color3Value   Color3

Implementations:
  - memtree: in-memory reference implementation for tests and embedding
*/
package tree
