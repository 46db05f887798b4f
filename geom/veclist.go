package geom

import (
	"math/big"
	"sort"
	"strings"
)

// VecList is an ordered list of vectors.
type VecList []Vec2

// ParseVecList parses a list of vectors. With sep == " ", s is a flat
// sequence of rationals read pairwise (a trailing odd value is ignored);
// otherwise s holds `x y` pairs separated by sep.
func ParseVecList(s, sep string) (VecList, error) {
	if sep == " " {
		fields := strings.Fields(s)
		out := make(VecList, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			x, err := ParseRat(fields[i])
			if err != nil {
				return nil, err
			}
			y, err := ParseRat(fields[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, Vec2{X: x, Y: y})
		}
		return out, nil
	}
	var out VecList
	for _, chunk := range strings.Split(strings.TrimSpace(s), sep) {
		v, err := ParseVec2(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// padded returns a copy of l extended with zero vectors up to length n.
func (l VecList) padded(n int) VecList {
	out := make(VecList, n)
	copy(out, l)
	for i := len(l); i < n; i++ {
		out[i] = Zero()
	}
	return out
}

// Add sums l and b element-wise; the shorter list is padded with zeros.
func (l VecList) Add(b VecList) VecList {
	n := max(len(l), len(b))
	aa, bb := l.padded(n), b.padded(n)
	out := make(VecList, n)
	for i := range out {
		out[i] = aa[i].Add(bb[i])
	}
	return out
}

// Sub subtracts b from l element-wise; the shorter list is padded with zeros.
func (l VecList) Sub(b VecList) VecList {
	n := max(len(l), len(b))
	aa, bb := l.padded(n), b.padded(n)
	out := make(VecList, n)
	for i := range out {
		out[i] = aa[i].Sub(bb[i])
	}
	return out
}

func (l VecList) mapped(f func(Vec2) Vec2) VecList {
	out := make(VecList, len(l))
	for i, v := range l {
		out[i] = f(v)
	}
	return out
}

func (l VecList) Scale(k *big.Rat) VecList {
	return l.mapped(func(v Vec2) Vec2 { return v.Scale(k) })
}

func (l VecList) Neg() VecList { return l.mapped(Vec2.Neg) }

func (l VecList) NegX() VecList { return l.mapped(Vec2.NegX) }

func (l VecList) NegY() VecList { return l.mapped(Vec2.NegY) }

// Append returns a new list ending with v.
func (l VecList) Append(v Vec2) VecList {
	out := make(VecList, len(l), len(l)+1)
	copy(out, l)
	return append(out, v)
}

// Extend returns a new list made of l followed by other.
func (l VecList) Extend(other VecList) VecList {
	out := make(VecList, 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

func (l VecList) Reverse() VecList {
	out := make(VecList, len(l))
	for i, v := range l {
		out[len(l)-1-i] = v
	}
	return out
}

// Mirror returns l followed by its reverse.
func (l VecList) Mirror() VecList {
	return l.Extend(l.Reverse())
}

// Bigrams returns the pairs of adjacent vectors.
func (l VecList) Bigrams() [][2]Vec2 {
	if len(l) < 2 {
		return nil
	}
	out := make([][2]Vec2, len(l)-1)
	for i := range out {
		out[i] = [2]Vec2{l[i], l[i+1]}
	}
	return out
}

func (l VecList) sortedAxes() (xx, yy []*big.Rat) {
	xx = make([]*big.Rat, len(l))
	yy = make([]*big.Rat, len(l))
	for i, v := range l {
		xx[i], yy[i] = val(v.X), val(v.Y)
	}
	sort.Slice(xx, func(i, j int) bool { return xx[i].Cmp(xx[j]) < 0 })
	sort.Slice(yy, func(i, j int) bool { return yy[i].Cmp(yy[j]) < 0 })
	return xx, yy
}

// MedianRange estimates the extent of the points, ignoring len(l)/n
// outliers at each end of both axes. The result holds the width and
// the height. An empty list or a non positive n gives the zero vector.
//
// The same count is discarded at both ends, unlike the asymmetric
// variant that keeps one more point at the top.
func (l VecList) MedianRange(n int) Vec2 {
	if len(l) == 0 || n <= 0 {
		return Zero()
	}
	idx := len(l) / n
	lo, hi := idx, len(l)-1-idx
	if lo > hi {
		lo = (len(l) - 1) / 2
		hi = lo
	}
	xx, yy := l.sortedAxes()
	return Vec2{X: sub(xx[hi], xx[lo]), Y: sub(yy[hi], yy[lo])}
}

// ContainingRect returns the smallest rectangle holding every vector.
// It returns false for an empty list.
func (l VecList) ContainingRect() (Rect, bool) {
	if len(l) == 0 {
		return Rect{}, false
	}
	xx, yy := l.sortedAxes()
	last := len(l) - 1
	return RectFromOppositePoints(Vec2{X: xx[0], Y: yy[0]}, Vec2{X: xx[last], Y: yy[last]}), true
}

func (l VecList) Equal(o VecList) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String joins the DLMT form of the vectors with ", ".
func (l VecList) String() string {
	return strings.Join(l.DLMTStrings(), ", ")
}

func (l VecList) DLMTStrings() []string {
	out := make([]string, len(l))
	for i, v := range l {
		out[i] = v.String()
	}
	return out
}

func (l VecList) SVGString(dpu, yOffset float64) string {
	chunks := make([]string, len(l))
	for i, v := range l {
		chunks[i] = v.SVGString(dpu, yOffset)
	}
	return strings.Join(chunks, " ")
}

func (l VecList) CartesianString(dpu float64) string {
	var sb strings.Builder
	for _, v := range l {
		sb.WriteString(v.CartesianString(dpu))
	}
	return sb.String()
}
