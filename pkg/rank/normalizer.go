package rank

import (
	"fmt"
	"math"

	"github.com/lioia/birank/pkg/sparse"
)

// Normalizer selects how BiRank rescales edge weights by node degree
// before propagating scores across the two sides.
type Normalizer int

const (
	HITS             Normalizer = iota + 1 // raw weights, scores renormalized every round
	CoHITS                                 // each side divided by the source degree
	BGRM                                   // both degrees, Sd is the transpose of Sp
	BiRankNormalizer                       // symmetric square-root degree scaling
)

var normalizerNames = map[Normalizer]string{
	HITS:             "HITS",
	CoHITS:           "CoHITS",
	BGRM:             "BGRM",
	BiRankNormalizer: "BiRank",
}

// ParseNormalizer maps a case-sensitive name to its Normalizer.
func ParseNormalizer(name string) (Normalizer, error) {
	for n, s := range normalizerNames {
		if s == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown normalizer %q", ErrInvalidConfiguration, name)
}

func (n Normalizer) String() string {
	if s, ok := normalizerNames[n]; ok {
		return s
	}
	return fmt.Sprintf("Normalizer(%d)", int(n))
}

func (n Normalizer) Valid() bool {
	_, ok := normalizerNames[n]
	return ok
}

func (n Normalizer) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: unknown normalizer %d", ErrInvalidConfiguration, int(n))
	}
	return []byte(n.String()), nil
}

func (n *Normalizer) UnmarshalText(text []byte) error {
	parsed, err := ParseNormalizer(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// propagation builds (Sp, Sd) from W and its degree vectors.
// Sp maps top scores onto the bottom side (P×D), Sd maps bottom scores onto
// the top side (D×P). kd and kp must already have zeros replaced.
func (n Normalizer) propagation(w *sparse.CSR, kd, kp []float64) (sp, sd *sparse.CSR, err error) {
	wt := w.Transpose()
	switch n {
	case HITS:
		return wt, w, nil
	case CoHITS:
		return wt.ScaleCols(inverse(kd, false)), w.ScaleCols(inverse(kp, false)), nil
	case BGRM:
		sp = wt.ScaleRows(inverse(kp, false)).ScaleCols(inverse(kd, false))
		return sp, sp.Transpose(), nil
	case BiRankNormalizer:
		sp = wt.ScaleRows(inverse(kp, true)).ScaleCols(inverse(kd, true))
		return sp, sp.Transpose(), nil
	}
	return nil, nil, fmt.Errorf("%w: unknown normalizer %d", ErrInvalidConfiguration, int(n))
}

func inverse(k []float64, sqrt bool) []float64 {
	inv := make([]float64, len(k))
	for i, v := range k {
		if sqrt {
			v = math.Sqrt(v)
		}
		inv[i] = 1 / v
	}
	return inv
}
