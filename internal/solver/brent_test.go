package solver

import (
	"errors"
	"math"
	"testing"

	"godice/domain/core"
)

func noErr(f func(float64) float64) Objective {
	return func(x float64) (float64, error) { return f(x), nil }
}

func TestBrent_Polynomial(t *testing.T) {
	// x^3 - 2x - 5 has a single real root near 2.0945514815423265
	f := noErr(func(x float64) float64 { return x*x*x - 2*x - 5 })

	root, err := Brent(f, 2, 3, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}

	want := 2.0945514815423265
	if math.Abs(root-want) > 1e-10 {
		t.Errorf("root = %.16f, want %.16f", root, want)
	}
}

func TestBrent_Transcendental(t *testing.T) {
	// cos(x) = x near 0.7390851332151607
	f := noErr(func(x float64) float64 { return math.Cos(x) - x })

	root, err := Brent(f, 0, 1, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}

	want := 0.7390851332151607
	if math.Abs(root-want) > 1e-10 {
		t.Errorf("root = %.16f, want %.16f", root, want)
	}
}

func TestBrent_ExactEndpointRoot(t *testing.T) {
	f := noErr(func(x float64) float64 { return x })

	root, err := Brent(f, 0, 1, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if err != nil {
		t.Fatalf("Brent failed: %v", err)
	}
	if root != 0 {
		t.Errorf("root = %g, want exact endpoint 0", root)
	}
}

func TestBrent_InvalidBracket(t *testing.T) {
	f := noErr(func(x float64) float64 { return x*x + 1 })

	_, err := Brent(f, -1, 1, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if !errors.Is(err, core.ErrBracketInvalid) {
		t.Fatalf("expected ErrBracketInvalid, got %v", err)
	}
}

func TestBrent_PropagatesEvaluationError(t *testing.T) {
	boom := errors.New("evaluation failed")
	f := func(x float64) (float64, error) { return 0, boom }

	_, err := Brent(f, 0, 1, DefaultXTol, DefaultRTol, DefaultMaxIter)
	if !errors.Is(err, boom) {
		t.Fatalf("expected evaluation error, got %v", err)
	}
}

func TestBrent_AgreesWithBisection(t *testing.T) {
	cases := []struct {
		name string
		f    func(float64) float64
		a, b float64
	}{
		{"exp decay", func(x float64) float64 { return math.Exp(-x) - 0.5 }, 0, 2},
		{"shifted sine", func(x float64) float64 { return math.Sin(x) - 0.3 }, 0, 1},
		{"steep cubic", func(x float64) float64 { return 50*x*x*x - 1 }, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := Brent(noErr(tc.f), tc.a, tc.b, DefaultXTol, DefaultRTol, DefaultMaxIter)
			if err != nil {
				t.Fatalf("Brent failed: %v", err)
			}

			// plain bisection as an independent oracle
			lo, hi := tc.a, tc.b
			for i := 0; i < 200; i++ {
				mid := (lo + hi) / 2
				if tc.f(lo)*tc.f(mid) <= 0 {
					hi = mid
				} else {
					lo = mid
				}
			}
			want := (lo + hi) / 2

			if math.Abs(root-want) > 1e-9 {
				t.Errorf("root = %.12f, bisection says %.12f", root, want)
			}
		})
	}
}
