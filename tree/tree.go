/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tree

// Kind names the concrete class of a node, e.g. "BoolValue" or "Folder".
type Kind string

// Node kinds known to the value layer. A tree implementation may define more;
// anything not listed here is treated as a non-value node.
const (
	KindFolder       Kind = "Folder"
	KindBoolValue    Kind = "BoolValue"
	KindNumberValue  Kind = "NumberValue"
	KindIntValue     Kind = "IntValue"
	KindStringValue  Kind = "StringValue"
	KindObjectValue  Kind = "ObjectValue"
	KindVector3Value Kind = "Vector3Value"
	KindColor3Value  Kind = "Color3Value"
)

func (k Kind) String() string { return string(k) }

// Node is a single element of an externally owned tree.
//
// Value nodes hold one value in a slot whose Go representation is fixed by
// the node's kind. Non-value nodes (folders) return nil from Value and reject
// SetValue.
type Node interface {
	Name() string
	SetName(name string)

	Parent() Node
	// SetParent moves the node under parent, or detaches it when parent is nil.
	SetParent(parent Node) error

	Kind() Kind
	IsA(kind Kind) bool

	Value() any
	SetValue(v any) error

	// Children returns a snapshot of the direct children in insertion order.
	Children() []Node

	// Destroy detaches the node and its descendants from the tree.
	Destroy()

	// FullName is a dotted diagnostic path from the top ancestor.
	FullName() string

	// Subscribe registers fn for structural changes to this node's direct
	// children. The returned func cancels the subscription and is idempotent.
	Subscribe(fn Listener) (unsubscribe func())
}

// Tree creates nodes.
type Tree interface {
	Create(kind Kind) (Node, error)
}

// EventType enumerates structural change notifications.
type EventType int

const (
	ChildAdded EventType = iota + 1
	ChildRemoved
)

func (t EventType) String() string {
	switch t {
	case ChildAdded:
		return "child-added"
	case ChildRemoved:
		return "child-removed"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners of Parent after the change has happened.
type Event struct {
	Type   EventType
	Parent Node
	Child  Node
}

// Listener receives events in the order the tree produced them.
type Listener func(Event)
