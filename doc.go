/*
Package nodeconf provides a typed key-value store that persists its values as
value nodes in an externally owned tree.

Every (name, value type) pair lives in its own child node of the store's root,
so a single name can hold a bool, a number and a string side by side without
collision. The tree is the storage; the Store only keeps an index from encoded
keys to live nodes.

Key Features:
  - One node per (name, value type), encoded as name + ":__conf:" + node kind
  - Adoption of value nodes already present under an existing root
  - Get and Ensure never create nodes; only Set does
  - Delete removes a name across every value type
  - Manual Sync or continuous Watch to follow external changes to the tree

Basic Usage:

	t := memtree.New()

	// Create a store with a fresh root folder
	conf, _ := nodeconf.New(t)

	conf.Set("apples", true)
	conf.Set("apples", 10)

	v, ok, _ := conf.Get("apples", registry.TypeBool)   // true, true
	n, ok, _ := nodeconf.Lookup[int64](conf, "apples")  // 10, true

	// Read with a default without creating anything
	motd, _ := conf.Ensure("motd", "welcome")           // "welcome"

	// Remove both apples nodes
	conf.Delete("apples")

Existing Trees:

	// Adopt whatever value nodes are already under root
	conf, _ := nodeconf.NewWithRoot(t, root, nodeconf.WithWatch(true))
	defer conf.Close()

Nodes whose held value maps to no value type are skipped with a warning on the
configured slog.Logger. A Store is not safe for concurrent use.
*/
package nodeconf
