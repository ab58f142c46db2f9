/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memtree provides an in-memory implementation of tree.Tree for tests and embedding
package memtree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/suparena/nodeconf/tree"
)

// Tree is an in-memory node tree. All nodes created by one Tree share its lock.
type Tree struct {
	mu          sync.Mutex
	created     int
	createError error
}

// New creates an empty Tree
func New() *Tree {
	return &Tree{}
}

// WithCreateError makes Create operations return an error
func (t *Tree) WithCreateError(err error) *Tree {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.createError = err
	return t
}

// Create returns a new, unparented node of the given kind holding the kind's zero value.
func (t *Tree) Create(kind tree.Kind) (tree.Node, error) {
	n, err := t.NewNode(kind)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// NewNode is Create returning the concrete type.
func (t *Tree) NewNode(kind tree.Kind) (*Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.createError != nil {
		return nil, t.createError
	}
	if kind == "" {
		return nil, fmt.Errorf("memtree: node kind is required")
	}

	zero, _ := zeroValue(kind)
	t.created++
	return &Node{
		tree:  t,
		id:    uuid.NewString(),
		kind:  kind,
		name:  string(kind),
		value: zero,
	}, nil
}

// Add creates a named node holding value and parents it under parent.
func (t *Tree) Add(parent tree.Node, kind tree.Kind, name string, value any) (*Node, error) {
	n, err := t.NewNode(kind)
	if err != nil {
		return nil, err
	}
	n.SetName(name)
	if _, ok := zeroValue(kind); ok {
		if err := n.SetValue(value); err != nil {
			return nil, err
		}
	}
	if parent != nil {
		if err := n.SetParent(parent); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Created returns the number of nodes this tree has created.
func (t *Tree) Created() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.created
}

// Node is a memtree node. It implements tree.Node.
type Node struct {
	tree      *Tree
	id        string
	kind      tree.Kind
	name      string
	value     any
	parent    *Node
	children  []*Node
	listeners []subscription
	nextSub   int
	destroyed bool
}

type subscription struct {
	id int
	fn tree.Listener
}

// pending is an event captured under the lock and delivered after it is released.
type pending struct {
	event     tree.Event
	listeners []tree.Listener
}

// ID returns the node's unique identifier
func (n *Node) ID() string {
	return n.id
}

func (n *Node) Name() string {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.name
}

func (n *Node) SetName(name string) {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	n.name = name
}

func (n *Node) Parent() tree.Node {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// SetParent moves n under parent and notifies the old and new parent's listeners.
func (n *Node) SetParent(parent tree.Node) error {
	var p *Node
	if parent != nil {
		pp, ok := parent.(*Node)
		if !ok || pp == nil || pp.tree != n.tree {
			return fmt.Errorf("memtree: parent %T does not belong to this tree", parent)
		}
		p = pp
	}

	n.tree.mu.Lock()
	if n.destroyed {
		n.tree.mu.Unlock()
		return fmt.Errorf("memtree: cannot reparent destroyed node %s", n.fullNameLocked())
	}
	if p != nil && p.destroyed {
		n.tree.mu.Unlock()
		return fmt.Errorf("memtree: cannot parent %s under destroyed node", n.fullNameLocked())
	}
	if p == n.parent {
		n.tree.mu.Unlock()
		return nil
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			n.tree.mu.Unlock()
			return fmt.Errorf("memtree: parenting %s under %s would create a cycle", n.fullNameLocked(), p.fullNameLocked())
		}
	}

	var events []pending
	if old := n.parent; old != nil {
		old.removeChildLocked(n)
		events = append(events, old.eventLocked(tree.ChildRemoved, n))
	}
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
		events = append(events, p.eventLocked(tree.ChildAdded, n))
	}
	n.tree.mu.Unlock()

	deliver(events)
	return nil
}

func (n *Node) Kind() tree.Kind {
	return n.kind
}

func (n *Node) IsA(kind tree.Kind) bool {
	return n.kind == kind
}

func (n *Node) Value() any {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.value
}

// SetValue stores v if its Go type matches the slot of the node's kind.
// Destroyed nodes reject new values.
func (n *Node) SetValue(v any) error {
	if _, ok := zeroValue(n.kind); !ok {
		return fmt.Errorf("memtree: %s has no value slot", n.kind)
	}
	if !accepts(n.kind, v) {
		return fmt.Errorf("memtree: %s cannot hold %T", n.kind, v)
	}

	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	if n.destroyed {
		return fmt.Errorf("memtree: cannot set value on destroyed node %s", n.fullNameLocked())
	}
	n.value = v
	return nil
}

func (n *Node) Children() []tree.Node {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()

	children := make([]tree.Node, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, c)
	}
	return children
}

// Destroy detaches n from its parent and marks n and its descendants destroyed.
func (n *Node) Destroy() {
	n.tree.mu.Lock()
	if n.destroyed {
		n.tree.mu.Unlock()
		return
	}

	var events []pending
	if old := n.parent; old != nil {
		old.removeChildLocked(n)
		events = append(events, old.eventLocked(tree.ChildRemoved, n))
		n.parent = nil
	}
	n.destroyLocked()
	n.tree.mu.Unlock()

	deliver(events)
}

func (n *Node) FullName() string {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.fullNameLocked()
}

func (n *Node) Subscribe(fn tree.Listener) func() {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()

	n.nextSub++
	id := n.nextSub
	n.listeners = append(n.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			n.tree.mu.Lock()
			defer n.tree.mu.Unlock()
			for i, s := range n.listeners {
				if s.id == id {
					n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Helper methods for testing

// Destroyed reports whether Destroy has been called on n or an ancestor.
func (n *Node) Destroyed() bool {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.destroyed
}

// ForceValue stores v without checking it against the node's kind.
func (n *Node) ForceValue(v any) {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	n.value = v
}

func (n *Node) removeChildLocked(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) destroyLocked() {
	for _, c := range n.children {
		c.parent = nil
		c.destroyLocked()
	}
	n.children = nil
	n.listeners = nil
	n.destroyed = true
}

func (n *Node) eventLocked(typ tree.EventType, child *Node) pending {
	fns := make([]tree.Listener, 0, len(n.listeners))
	for _, s := range n.listeners {
		fns = append(fns, s.fn)
	}
	return pending{
		event:     tree.Event{Type: typ, Parent: n, Child: child},
		listeners: fns,
	}
}

func (n *Node) fullNameLocked() string {
	var parts []string
	for a := n; a != nil; a = a.parent {
		parts = append(parts, a.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

func deliver(events []pending) {
	for _, p := range events {
		for _, fn := range p.listeners {
			fn(p.event)
		}
	}
}

// zeroValue returns the initial value of a value kind and whether kind has a value slot.
func zeroValue(kind tree.Kind) (any, bool) {
	switch kind {
	case tree.KindBoolValue:
		return false, true
	case tree.KindNumberValue:
		return float64(0), true
	case tree.KindIntValue:
		return int64(0), true
	case tree.KindStringValue:
		return "", true
	case tree.KindObjectValue:
		return nil, true
	case tree.KindVector3Value:
		return tree.Vector3{}, true
	case tree.KindColor3Value:
		return tree.Color3{}, true
	default:
		return nil, false
	}
}

func accepts(kind tree.Kind, v any) bool {
	switch kind {
	case tree.KindBoolValue:
		_, ok := v.(bool)
		return ok
	case tree.KindNumberValue:
		_, ok := v.(float64)
		return ok
	case tree.KindIntValue:
		_, ok := v.(int64)
		return ok
	case tree.KindStringValue:
		_, ok := v.(string)
		return ok
	case tree.KindObjectValue:
		if v == nil {
			return true
		}
		_, ok := v.(tree.Node)
		return ok
	case tree.KindVector3Value:
		_, ok := v.(tree.Vector3)
		return ok
	case tree.KindColor3Value:
		_, ok := v.(tree.Color3)
		return ok
	default:
		return false
	}
}
