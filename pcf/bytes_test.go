package pcf

import (
	"errors"
	"testing"
)

func TestSegmentView(t *testing.T) {
	seg := binarySegm{0, 1, 2, 3, 4, 5, 6, 7}
	view, err := seg.view(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if view.Size() != 4 || view[0] != 2 {
		t.Errorf("unexpected view %v", view)
	}
	for _, c := range [][2]int{{-1, 4}, {6, 4}, {0, 9}, {8, 1}, {0, 0}} {
		if _, err := seg.view(c[0], c[1]); !errors.Is(err, errBufferBounds) {
			t.Errorf("view(%d, %d) should fail with a bounds error, got %v", c[0], c[1], err)
		}
	}
}

func TestSegmentNumbers(t *testing.T) {
	seg := binarySegm{0x12, 0x34, 0x56, 0x78, 0xFF, 0xFE}
	if v, _ := seg.u16(0); v != 0x1234 {
		t.Errorf("expected big-endian 0x1234, got %#x", v)
	}
	if v, _ := seg.u32(0); v != 0x12345678 {
		t.Errorf("expected big-endian 0x12345678, got %#x", v)
	}
	if v, _ := seg.u32LE(0); v != 0x78563412 {
		t.Errorf("expected little-endian 0x78563412, got %#x", v)
	}
	if v, _ := seg.i16(4); v != -2 {
		t.Errorf("expected -2, got %d", v)
	}
	if v, _ := seg.u8(5); v != 0xFE {
		t.Errorf("expected 0xFE, got %#x", v)
	}
	if _, err := seg.u32(4); !errors.Is(err, errBufferBounds) {
		t.Error("reading a 32-bit word at the buffer end should fail")
	}
	if _, err := seg.u16(-1); !errors.Is(err, errBufferBounds) {
		t.Error("negative offsets should fail")
	}
}

func TestSegmentCString(t *testing.T) {
	seg := binarySegm("FAMILY_NAME\x00Testface\x00")
	s, err := seg.cstring(0)
	if err != nil || s != "FAMILY_NAME" {
		t.Errorf("expected FAMILY_NAME, got %q (%v)", s, err)
	}
	s, err = seg.cstring(12)
	if err != nil || s != "Testface" {
		t.Errorf("expected Testface, got %q (%v)", s, err)
	}
	if _, err := seg.cstring(100); !errors.Is(err, errBufferBounds) {
		t.Error("an offset outside the pool should fail")
	}
	if _, err := seg.cstring(-1); !errors.Is(err, errBufferBounds) {
		t.Error("negative offsets should fail")
	}
	if _, err := binarySegm("no terminator").cstring(0); !errors.Is(err, errBufferBounds) {
		t.Error("a string without NUL terminator should fail")
	}
}
