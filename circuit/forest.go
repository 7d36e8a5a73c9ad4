package circuit

// DisjointSet is a union-find forest over the integers 0..n-1 with path
// compression and union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
	size   []int
	sets   int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// Find returns the root of u's set.
// Iterative with path halving to avoid deep recursion.
func (ds *DisjointSet) Find(u int) int {
	for ds.parent[u] != u {
		// Path compression: make u point to its grandparent.
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// Union merges the sets of u and v and reports whether they were disjoint.
func (ds *DisjointSet) Union(u, v int) bool {
	rootU, rootV := ds.Find(u), ds.Find(v)
	if rootU == rootV {
		// Already in the same set; no action needed.
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if ds.rank[rootU] < ds.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	ds.parent[rootV] = rootU
	ds.size[rootU] += ds.size[rootV]
	if ds.rank[rootU] == ds.rank[rootV] {
		ds.rank[rootU]++
	}
	ds.sets--

	return true
}

// Size returns the number of elements in u's set.
func (ds *DisjointSet) Size(u int) int {
	return ds.size[ds.Find(u)]
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int {
	return ds.sets
}

// Groups returns the members of every set. Sets are ordered by their
// smallest member and members are ascending.
func (ds *DisjointSet) Groups() [][]int {
	index := make(map[int]int, ds.sets)
	groups := make([][]int, 0, ds.sets)
	for u := range ds.parent {
		root := ds.Find(u)
		gi, ok := index[root]
		if !ok {
			gi = len(groups)
			index[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], u)
	}

	return groups
}
