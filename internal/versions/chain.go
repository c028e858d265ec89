package versions

import "time"

// Chain is the append-only arena holding every node ever created, oldest
// first. Navigation follows the PrevID/NextID links; the arena order is kept
// for bookkeeping and listing.
type Chain struct {
	nodes []Node
}

// newChain creates a chain holding only the root node.
func newChain(code string, lang Language, description string, created time.Time, layout string) *Chain {
	c := &Chain{}
	c.append(NoNode, code, lang, description, created, layout)
	return c
}

// append stores a new node after the node with ID after and links the two.
// An existing forward link on after is overwritten; the node it pointed to
// stays in the arena but is no longer reachable by walking forward.
func (c *Chain) append(after NodeID, code string, lang Language, description string, created time.Time, layout string) NodeID {
	node := Node{
		ID:          NodeID(len(c.nodes)),
		Code:        code,
		Language:    lang,
		Description: description,
		CreatedAt:   created.Format(layout),
		Created:     created,
		PrevID:      after,
		NextID:      NoNode,
	}
	node.Fingerprint = node.computeFingerprint()

	c.nodes = append(c.nodes, node)
	if c.contains(after) {
		c.nodes[after].NextID = node.ID
	}
	return node.ID
}

func (c *Chain) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(c.nodes)
}

// Len returns the number of nodes ever created.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Root returns the first node.
func (c *Chain) Root() Node {
	return c.nodes[0]
}

// Get returns the node with the given ID.
func (c *Chain) Get(id NodeID) (Node, bool) {
	if !c.contains(id) {
		return Node{}, false
	}
	return c.nodes[id], true
}

// All returns a copy of every node in creation order.
func (c *Chain) All() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// Walk follows NextID links from the root and returns the visited nodes.
func (c *Chain) Walk() []Node {
	var out []Node
	for id := NodeID(0); c.contains(id); id = c.nodes[id].NextID {
		out = append(out, c.nodes[id])
	}
	return out
}

// Lineage follows PrevID links from id back to the root. The first element
// is the node itself, the last one is the root.
func (c *Chain) Lineage(id NodeID) []Node {
	var out []Node
	for c.contains(id) {
		out = append(out, c.nodes[id])
		id = c.nodes[id].PrevID
	}
	return out
}

// Detached returns the IDs of nodes that cannot be reached by walking
// forward from the root. They exist once a save from a non-terminal node
// overwrote an older forward link.
func (c *Chain) Detached() map[NodeID]bool {
	onPath := make(map[NodeID]bool, len(c.nodes))
	for _, n := range c.Walk() {
		onPath[n.ID] = true
	}

	detached := make(map[NodeID]bool)
	for _, n := range c.nodes {
		if !onPath[n.ID] {
			detached[n.ID] = true
		}
	}
	return detached
}
