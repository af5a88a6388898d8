package i18n

// Kind tells which variant a Node holds.
type Kind int

const (
	// StringLeaf is a template string.
	StringLeaf Kind = iota
	// ScalarLeaf is a number or boolean, rendered as text without templating.
	ScalarLeaf
	// ListLeaf is a sequence of strings concatenated before templating.
	ListLeaf
	// SubtreeNode is a nested table addressed by further key segments.
	SubtreeNode
)

// Node is one entry of a locale table. Exactly one of the variant fields is
// meaningful, selected by Kind.
type Node struct {
	Kind     Kind
	Text     string
	Parts    []string
	Children map[string]*Node
}

// child returns the named child of a subtree. Leaves have no children.
func (n *Node) child(segment string) (*Node, bool) {
	if n == nil || n.Kind != SubtreeNode || segment == "" {
		return nil, false
	}
	c, ok := n.Children[segment]
	return c, ok
}

// walk follows the dotted path segments from n.
func (n *Node) walk(segments []string) (*Node, bool) {
	cur := n
	for _, seg := range segments {
		next, ok := cur.child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
