package graph

// Index is a bijection between external node identifiers and dense
// indices 0..n-1, assigned in first-occurrence order.
type Index struct {
	ids []string
	pos map[string]int
}

func NewIndex() *Index {
	return &Index{pos: make(map[string]int)}
}

// Add returns the index of id, assigning the next free one on first sight.
func (x *Index) Add(id string) int {
	if i, ok := x.pos[id]; ok {
		return i
	}
	i := len(x.ids)
	x.ids = append(x.ids, id)
	x.pos[id] = i
	return i
}

func (x *Index) Lookup(id string) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}

func (x *Index) ID(i int) string { return x.ids[i] }

func (x *Index) Len() int { return len(x.ids) }

// IDs returns the identifiers in index order.
func (x *Index) IDs() []string {
	return append([]string(nil), x.ids...)
}
