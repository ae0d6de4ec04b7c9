package astar

// Node is the search state of one grid cell.
//
// Row and Col never change after creation and are the node's identity.
// G, H and F are maintained so that F == G + H after every mutation.
// The parent link is a Coordinate, not a pointer: it addresses the
// predecessor inside the engine's arena.
type Node struct {
	Row, Col int
	Blocked  bool

	H int // estimated cost to the goal; fixed once computed
	G int // best known cost from the start
	F int // G + H, frontier ordering key

	parent    Coordinate
	hasParent bool
}

// NewNode returns an unblocked node at (row, col) with zero costs and no parent.
func NewNode(row, col int) Node {
	return Node{Row: row, Col: col}
}

// Coordinate returns the node's identity key.
func (n Node) Coordinate() Coordinate {
	return Coordinate{Row: n.Row, Col: n.Col}
}

// Parent returns the predecessor on the best path found so far.
// ok is false for the start cell and for undiscovered cells.
func (n Node) Parent() (c Coordinate, ok bool) {
	return n.parent, n.hasParent
}

// Equal reports whether n and other address the same cell.
// Costs, heuristic, block flag and parent are ignored.
func (n Node) Equal(other Node) bool {
	return n.Row == other.Row && n.Col == other.Col
}

// ComputeHeuristic sets H to an admissible estimate of the cost from n to
// goal under costs, then refreshes F.
func (n *Node) ComputeHeuristic(goal Coordinate, costs Costs) {
	n.H = costs.estimate(n.Coordinate(), goal)
	n.F = n.G + n.H
}

// SetData records parent as the predecessor reached at moveCost.
// Used the first time a node is discovered.
func (n *Node) SetData(parent *Node, moveCost int) {
	n.G = parent.G + moveCost
	n.F = n.G + n.H
	n.parent = parent.Coordinate()
	n.hasParent = true
}

// TryImprovePath relaxes n through candidate. If the path via candidate is
// strictly cheaper, n adopts it and TryImprovePath returns true; otherwise n
// is left untouched.
func (n *Node) TryImprovePath(candidate *Node, moveCost int) bool {
	cost := candidate.G + moveCost
	if cost >= n.G {
		return false
	}
	n.SetData(candidate, moveCost)

	return true
}

// clearSearch drops per-search state, keeping identity, block flag and H.
func (n *Node) clearSearch() {
	n.G = 0
	n.F = n.H
	n.parent = Coordinate{}
	n.hasParent = false
}

// Costs is the movement cost model shared by expansion and the heuristic.
type Costs struct {
	Straight int
	Diagonal int
	Conn     Connectivity
}

// estimate returns a lower bound on the cost between a and b.
//
//   - Conn4:          s·(dr+dc)
//   - Conn8, d ≥ s:   s·(dr+dc) + (min(d, 2s) − 2s)·min(dr,dc)
//   - Conn8, d < s:   d·max(dr,dc)
func (c Costs) estimate(a, b Coordinate) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	s := c.Straight
	if c.Conn == Conn4 {
		return s * (dr + dc)
	}

	d := c.Diagonal
	if d < s {
		return d * max(dr, dc)
	}
	// A diagonal dearer than two straight moves is never worth taking.
	d = min(d, 2*s)

	return s*(dr+dc) + (d-2*s)*min(dr, dc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
