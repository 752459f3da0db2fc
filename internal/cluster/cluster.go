// Package cluster resolves verified match edges into equivalence classes and
// picks one representative per class.
package cluster

// Resolver is a union-find over ids 0..n-1 stored as a flat parent arena.
type Resolver struct {
	parent []int32
	size   []int32
}

// New returns a resolver where every id is its own class.
func New(n int) *Resolver {
	r := &Resolver{parent: make([]int32, n), size: make([]int32, n)}
	for i := range r.parent {
		r.parent[i] = int32(i)
		r.size[i] = 1
	}
	return r
}

// Len is the number of ids.
func (r *Resolver) Len() int { return len(r.parent) }

// Find returns the root of x, halving the path on the way.
func (r *Resolver) Find(x int32) int32 {
	for r.parent[x] != x {
		r.parent[x] = r.parent[r.parent[x]]
		x = r.parent[x]
	}
	return x
}

// Union merges the classes of a and b. It returns false if they were
// already joined.
func (r *Resolver) Union(a, b int32) bool {
	ra, rb := r.Find(a), r.Find(b)
	if ra == rb {
		return false
	}
	if r.size[ra] < r.size[rb] {
		ra, rb = rb, ra
	}
	r.parent[rb] = ra
	r.size[ra] += r.size[rb]
	return true
}

// Same reports whether a and b are in one class.
func (r *Resolver) Same(a, b int32) bool { return r.Find(a) == r.Find(b) }

// Classes counts the distinct classes.
func (r *Resolver) Classes() int {
	n := 0
	for i := range r.parent {
		if r.parent[i] == int32(i) {
			n++
		}
	}
	return n
}

// Resolve returns the representative of every class in ascending id order.
// The representative is the member with the longest length; ties go to the
// lowest id. lengths[i] is the sequence length of id i.
func (r *Resolver) Resolve(lengths []int) []int {
	best := make([]int32, len(r.parent))
	for i := range best {
		best[i] = -1
	}
	for i := range r.parent {
		root := r.Find(int32(i))
		cur := best[root]
		// ids ascend, so a strictly longer member is the only way to displace.
		if cur < 0 || lengths[i] > lengths[cur] {
			best[root] = int32(i)
		}
	}
	var reps []int
	for i := range r.parent {
		if root := r.Find(int32(i)); best[root] == int32(i) {
			reps = append(reps, i)
		}
	}
	return reps
}
