package locale

import (
	"iter"
	"slices"
)

// Node is a value in a locale tree: either a Leaf or a *Branch.
type Node interface {
	node()
}

// Leaf is a terminal translation string.
type Leaf string

func (Leaf) node() {}

// Branch is an ordered mapping of keys to nodes.
// A key keeps the position of its first insertion; overwriting it does not move it.
// The zero value is an empty branch ready to use.
type Branch struct {
	children map[string]Node
	keys     []string
}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]Node)}
}

func (*Branch) node() {}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns the direct child keys in insertion order.
func (b *Branch) Keys() []string {
	if b == nil {
		return nil
	}
	return slices.Clone(b.keys)
}

// Get returns the child stored under key.
func (b *Branch) Get(key string) (Node, bool) {
	if b == nil {
		return nil, false
	}
	n, ok := b.children[key]
	return n, ok
}

// Set stores n under key, replacing whatever was there.
func (b *Branch) Set(key string, n Node) {
	if b.children == nil {
		b.children = make(map[string]Node)
	}
	if _, exists := b.children[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.children[key] = n
}

// All iterates direct children in insertion order.
func (b *Branch) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if b == nil {
			return
		}
		for _, key := range b.keys {
			if !yield(key, b.children[key]) {
				return
			}
		}
	}
}

// Walk calls fn for every leaf in depth-first insertion order with its
// path segments joined by sep.
func (b *Branch) Walk(sep string, fn func(path, value string)) {
	b.walk("", sep, fn)
}

func (b *Branch) walk(prefix, sep string, fn func(path, value string)) {
	for key, child := range b.All() {
		path := key
		if prefix != "" {
			path = prefix + sep + key
		}
		switch n := child.(type) {
		case Leaf:
			fn(path, string(n))
		case *Branch:
			n.walk(path, sep, fn)
		}
	}
}

// Flatten returns every leaf keyed by its joined path.
func (b *Branch) Flatten(sep string) map[string]string {
	out := make(map[string]string)
	b.Walk(sep, func(path, value string) {
		out[path] = value
	})
	return out
}
