package gamey

// Tracker is a union-find over one player's cells plus three side nodes.
// Elements 0..cells-1 are board cells in row-major order, the last three are
// the sides X, Y and Z.
type Tracker struct {
	parent []int
	size   []int
	cells  int
}

func NewTracker(cells int) *Tracker {
	n := cells + 3
	t := &Tracker{
		parent: make([]int, n),
		size:   make([]int, n),
		cells:  cells,
	}
	for i := range t.parent {
		t.parent[i] = i
		t.size[i] = 1
	}
	return t
}

func (t *Tracker) sideNode(s Side) int {
	return t.cells + int(s)
}

func (t *Tracker) find(i int) int {
	root := i
	for t.parent[root] != root {
		root = t.parent[root]
	}
	for t.parent[i] != root {
		next := t.parent[i]
		t.parent[i] = root
		i = next
	}
	return root
}

func (t *Tracker) union(a, b int) {
	ra, rb := t.find(a), t.find(b)
	if ra == rb {
		return
	}
	if t.size[ra] < t.size[rb] {
		ra, rb = rb, ra
	}
	t.parent[rb] = ra
	t.size[ra] += t.size[rb]
}

// Connect joins two cells owned by the same player.
func (t *Tracker) Connect(a, b int) {
	t.union(a, b)
}

// TouchSide joins a cell with a side node.
func (t *Tracker) TouchSide(cell int, s Side) {
	t.union(cell, t.sideNode(s))
}

func (t *Tracker) Connected(a, b int) bool {
	return t.find(a) == t.find(b)
}

// Won reports whether all three side nodes share one set.
func (t *Tracker) Won() bool {
	root := t.find(t.sideNode(SideX))
	return root == t.find(t.sideNode(SideY)) && root == t.find(t.sideNode(SideZ))
}

func (t *Tracker) clone() *Tracker {
	c := &Tracker{
		parent: make([]int, len(t.parent)),
		size:   make([]int, len(t.size)),
		cells:  t.cells,
	}
	copy(c.parent, t.parent)
	copy(c.size, t.size)
	return c
}
