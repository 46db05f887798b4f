package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func vec(s string) Vec2 {
	v, err := ParseVec2(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestParseRat(t *testing.T) {
	for _, tt := range []struct {
		in, out string
	}{
		{"1/2", "1/2"},
		{"2/4", "1/2"},
		{"-3", "-3"},
		{"0/1", "0"},
		{" 7/1 ", "7"},
		{"0.25", "1/4"},
	} {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRat(tt.in)
			test.Error(t, err)
			test.T(t, FormatRat(r), tt.out)
		})
	}

	for _, bad := range []string{"", "a/b", "1/0", "1 2"} {
		if _, err := ParseRat(bad); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseRat(%q): expected ErrInvalidNumber, got %v", bad, err)
		}
	}
}

func TestTrigIsQuantized(t *testing.T) {
	for _, tt := range []struct {
		turn     string
		cos, sin string
	}{
		{"0", "1", "0"},
		{"1/4", "0", "1"},
		{"1/2", "-1", "0"},
		{"3/4", "0", "-1"},
		{"1/8", "707/1000", "707/1000"},
		{"1/3", "-1/2", "433/500"},
		{"5/4", "0", "1"},
		{"-1/4", "0", "-1"},
		{"1e400", "1", "0"},
	} {
		t.Run(tt.turn, func(t *testing.T) {
			turn := MustParseRat(tt.turn)
			test.T(t, FormatRat(CosFraction(turn)), tt.cos)
			test.T(t, FormatRat(SinFraction(turn)), tt.sin)
		})
	}
	test.T(t, FormatRat(AtanFraction(Int(1))), "1/8")
	test.T(t, FormatRat(AtanFraction(Int(0))), "0")
	test.T(t, FormatRat(AtanFraction(MustParseRat("-1e400"))), "-1/4")
}

func TestVecArithmetic(t *testing.T) {
	a, b := vec("1/2 -1"), vec("1/3 2")
	test.T(t, a.Add(b).String(), "5/6 1")
	test.T(t, a.Sub(b).String(), "1/6 -3")
	test.T(t, a.Scale(R(2, 3)).String(), "1/3 -2/3")
	test.T(t, a.Neg().String(), "-1/2 1")
	test.T(t, a.NegX().String(), "-1/2 -1")
	test.T(t, a.NegY().String(), "1/2 1")
	test.T(t, FormatRat(a.SquareMagnitude()), "5/4")
	test.T(t, a.Equal(vec("2/4 -1")), true)
	test.T(t, a.Equal(b), false)
}

func TestVecRotate(t *testing.T) {
	v := vec("1 0")
	if r := v.Rotate(Int(0)); r.X != v.X || r.Y != v.Y {
		t.Errorf("zero rotation changed the vector: %s", r)
	}
	test.T(t, v.Rotate(R(1, 4)).String(), "0 1")
	test.T(t, v.Rotate(R(1, 2)).String(), "-1 0")

	// quantized trig is not exactly invertible
	p := vec("3/7 -2/5")
	back := p.Rotate(R(1, 8)).Rotate(R(-1, 8))
	dx := toFloat(back.X) - toFloat(p.X)
	dy := toFloat(back.Y) - toFloat(p.Y)
	if math.Abs(dx) > 1e-2 || math.Abs(dy) > 1e-2 {
		t.Errorf("rotation round trip drifted: %s -> %s", p, back)
	}
}

func TestVecAngle(t *testing.T) {
	test.T(t, FormatRat(vec("1 1").Angle()), "1/8")
	test.T(t, FormatRat(vec("0 1").Angle()), "1/4") // x replaced by a tiny value
	test.T(t, FormatRat(FromAmplitudeAngle(Int(2), R(1, 4)).X), "0")
	test.T(t, FormatRat(FromAmplitudeAngle(Int(2), R(1, 4)).Y), "2")
}

func TestIsInsideRect(t *testing.T) {
	origin := vec("0 0")
	one := Int(1)
	for _, tt := range []struct {
		p  string
		in bool
	}{
		{"1/2 1/2", true},
		{"0 0", true},
		{"1 1", true},
		{"2 2", false},
		{"-1/100 1/2", false},
		{"1/2 101/100", false},
	} {
		test.T(t, vec(tt.p).IsInsideRect(origin, one, one), tt.in, tt.p)
	}
}

func TestFormatting(t *testing.T) {
	v := vec("1/2 1/4")
	test.T(t, v.FloatString(), "0.500 0.250")
	test.T(t, v.CartesianString(10), "(5.000,2.500)")
	test.T(t, v.SVGString(100, 100), "50.000 75.000")
	test.T(t, FormatFloat(R(2, 3)), "0.667")
}

func TestRect(t *testing.T) {
	r := RectFromOppositePoints(vec("-1 -2"), vec("3 1/2"))
	test.T(t, r.String(), "xy -1 -2 width 4 height 5/2")
	test.T(t, r.Contains(vec("0 0")), true)
	test.T(t, r.Contains(vec("4 0")), false)
	test.T(t, r.Equal(NewRect(vec("-1 -2"), Int(4), R(5, 2))), true)
}

func TestVecList(t *testing.T) {
	a, err := ParseVecList("1 2 3 4 5", " ")
	test.Error(t, err)
	test.T(t, a.String(), "1 2, 3 4")

	b, err := ParseVecList("1/2 1/2;0 1", ";")
	test.Error(t, err)
	test.T(t, b.String(), "1/2 1/2, 0 1")

	c, _ := ParseVecList("1 1", " ")
	test.T(t, a.Add(c).String(), "2 3, 3 4")
	test.T(t, c.Sub(a).String(), "0 -1, -3 -4")
	test.T(t, a.Scale(R(1, 2)).String(), "1/2 1, 3/2 2")
	test.T(t, a.Neg().String(), "-1 -2, -3 -4")
	test.T(t, a.Reverse().String(), "3 4, 1 2")
	test.T(t, a.Mirror().String(), "1 2, 3 4, 3 4, 1 2")
	test.T(t, a.Append(vec("0 0")).String(), "1 2, 3 4, 0 0")
	test.T(t, a.Extend(b).String(), "1 2, 3 4, 1/2 1/2, 0 1")
	test.T(t, len(a), 2) // operations never modify the receiver

	pairs := a.Extend(c).Bigrams()
	test.T(t, len(pairs), 2)
	test.T(t, pairs[1][0].String()+" / "+pairs[1][1].String(), "3 4 / 1 1")
	test.T(t, len(VecList{}.Bigrams()), 0)
}

func TestMedianRange(t *testing.T) {
	l, _ := ParseVecList("0 0 1 10 2 20 3 30 100 1000", " ")
	// one point in five is dropped at both ends
	test.T(t, l.MedianRange(5).String(), "2 20")
	test.T(t, l.MedianRange(100).String(), "100 1000")
	test.T(t, l.MedianRange(1).String(), "0 0")
	test.T(t, VecList{}.MedianRange(3).String(), "0 0")
}

func TestContainingRect(t *testing.T) {
	l, _ := ParseVecList("1 -1 -2 3 1/2 1/2", " ")
	r, ok := l.ContainingRect()
	test.T(t, ok, true)
	test.T(t, r.String(), "xy -2 -1 width 3 height 4")

	_, ok = VecList{}.ContainingRect()
	test.T(t, ok, false)
}
