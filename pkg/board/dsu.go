package board

// disjointSet - система непересекающихся множеств для алгоритма Краскала
type disjointSet struct {
	parent []int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent}
}

// find возвращает корень множества со сжатием путей
func (d *disjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// union объединяет множества. false - если x и y уже были вместе.
func (d *disjointSet) union(x, y int) bool {
	px, py := d.find(x), d.find(y)
	if px == py {
		return false
	}
	d.parent[px] = py
	return true
}
