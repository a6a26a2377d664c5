package locale

import "strings"

// Expander writes dotted keys into nested branches.
//
// With strict set, a leaf/branch conflict on the path is reported as a
// *KeyCollisionError and the tree is left unchanged. Without it, the conflict is resolved by
// replacement: a leaf found where a branch is needed becomes an empty branch,
// and a leaf written over a branch discards everything nested under it.
type Expander struct {
	separator string
	strict    bool
}

// NewExpander returns an Expander splitting keys on separator.
// An empty separator falls back to DefaultSeparator.
func NewExpander(separator string, strict bool) *Expander {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Expander{separator: separator, strict: strict}
}

// Separator returns the path delimiter.
func (e *Expander) Separator() string { return e.separator }

// Strict reports whether collisions fail instead of replacing.
func (e *Expander) Strict() bool { return e.strict }

// Segments splits key on the separator and drops empty segments,
// so "a..b" and ".a.b" both yield ["a", "b"].
func (e *Expander) Segments(key string) []string {
	parts := strings.Split(key, e.separator)
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Assign stores value at the path described by key, creating intermediate
// branches as needed.
func (e *Expander) Assign(tree *Branch, key, value string) error {
	segments := e.Segments(key)
	if len(segments) == 0 {
		return ErrEmptyKey
	}

	cur := tree
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		existing, _ := cur.Get(seg)
		switch n := existing.(type) {
		case *Branch:
			cur = n
			continue
		case Leaf:
			if e.strict {
				return &KeyCollisionError{Key: key, Segment: seg, Kind: CollisionBranchOverLeaf}
			}
		}
		next := NewBranch()
		cur.Set(seg, next)
		cur = next
	}

	leaf := segments[last]
	if e.strict {
		if existing, _ := cur.Get(leaf); existing != nil {
			if _, isBranch := existing.(*Branch); isBranch {
				return &KeyCollisionError{Key: key, Segment: leaf, Kind: CollisionLeafOverBranch}
			}
		}
	}
	cur.Set(leaf, Leaf(value))
	return nil
}
