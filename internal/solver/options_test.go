package solver

import (
	"testing"
)

func TestValueRender(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"string", String("ma27"), "ma27"},
		{"int", Int(500), "500"},
		{"float plain", Float(0.1), "0.1"},
		{"float exponent", Float(1e-6), "1e-06"},
		{"bool true", Bool(true), "yes"},
		{"bool false", Bool(false), "no"},
		{"zero value", Value{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Render(); got != tc.want {
				t.Errorf("Render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	if !String("pardiso mkl").NeedsQuoting() {
		t.Error("string with space should need quoting")
	}
	if String("ma27").NeedsQuoting() {
		t.Error("string without space should not need quoting")
	}
	// Non-string kinds never quote, whatever they render to.
	if Float(1e-6).NeedsQuoting() || Int(7).NeedsQuoting() || Bool(true).NeedsQuoting() {
		t.Error("numeric/bool values should never need quoting")
	}
}

func TestOptionsOrder(t *testing.T) {
	opts := NewOptions()
	opts.Set("b", Int(2))
	opts.Set("a", Int(1))
	opts.Set("c", Int(3))
	opts.Set("a", Int(9)) // update keeps original position

	want := []string{"b", "a", "c"}
	got := opts.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	v, ok := opts.Get("a")
	if !ok || v.Render() != "9" {
		t.Errorf("Get(a) = %v %v, want updated value 9", v, ok)
	}
	if opts.Len() != 3 {
		t.Errorf("Len() = %d, want 3", opts.Len())
	}
}
