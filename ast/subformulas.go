package ast

// Subformulas returns the non-atomic nodes of the tree in post-order:
// a node's children always appear strictly before the node itself, and
// VarKind nodes are excluded. The returned order is the left-to-right
// column order of a truth table over the formula.
func Subformulas(n *Node) []*Node {
	var subs []*Node
	n.Visit(func(nn *Node, isPost bool) (bool, error) {
		if isPost && nn.Kind != VarKind {
			subs = append(subs, nn)
		}
		return true, nil
	})
	return subs
}
