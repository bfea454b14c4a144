package graph

// Degrees counts the distinct neighbors of every node on both sides, from
// the edge records rather than from W. Parallel edges count once and
// weights are ignored. Results follow index order.
//
// A Bipartite not made by BuildBipartite has no edge records; its degrees
// are then the stored entries of W per row and column.
func (b *Bipartite) Degrees() (top, bottom []Degree) {
	pairs := b.pairs
	if pairs == nil {
		b.W.DoNonZero(func(i, j int, v float64) {
			if v != 0 {
				pairs = append(pairs, [2]int{i, j})
			}
		})
	}
	seen := make(map[[2]int]bool, len(pairs))
	topDeg := make([]int, b.Top.Len())
	bottomDeg := make([]int, b.Bottom.Len())
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		topDeg[p[0]]++
		bottomDeg[p[1]]++
	}
	return degrees(b.Top, topDeg), degrees(b.Bottom, bottomDeg)
}

func degrees(idx *Index, counts []int) []Degree {
	out := make([]Degree, len(counts))
	for i, c := range counts {
		out[i] = Degree{ID: idx.ID(i), Index: i, Degree: c}
	}
	return out
}
