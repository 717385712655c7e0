package pcf

import "testing"

func TestOption(t *testing.T) {
	some := Some('A')
	if some.IsNone() || !some.IsSome() {
		t.Error("Some should hold a value")
	}
	if r, ok := some.Unwrap(); !ok || r != 'A' {
		t.Errorf("expected 'A', got %q (ok = %v)", r, ok)
	}
	if some.MustUnwrap() != 'A' {
		t.Error("MustUnwrap should yield the value")
	}
	none := None[rune]()
	if none.IsSome() {
		t.Error("None should be empty")
	}
	if none.Or('x') != 'x' {
		t.Error("Or should yield the default for None")
	}
	if some.Or('x') != 'A' {
		t.Error("Or should yield the value for Some")
	}
	mapped := Map(some, func(r rune) int { return int(r) })
	if v, ok := mapped.Unwrap(); !ok || v != 65 {
		t.Errorf("expected mapped value 65, got %d", v)
	}
	if Map(none, func(r rune) int { return 1 }).IsSome() {
		t.Error("mapping None should stay None")
	}
}

func TestOptionMustUnwrapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustUnwrap on None should panic")
		}
	}()
	None[rune]().MustUnwrap()
}
