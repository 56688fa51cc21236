package bit

import (
	"testing"
)

func TestIsSet(t *testing.T) {
	tests := []struct {
		index    uint8
		value    uint8
		expected bool
	}{
		{7, 0b10000000, true},
		{0, 0b10000000, false},
		{0, 0b00000001, true},
		{3, 0b11110111, false},
	}

	for _, tt := range tests {
		if result := IsSet(tt.index, tt.value); result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestSetClear(t *testing.T) {
	if result := Set(7, 0x00); result != 0x80 {
		t.Errorf("Set(7, 0x00) = %02X; want 80", result)
	}
	if result := Set(0, 0x80); result != 0x81 {
		t.Errorf("Set(0, 0x80) = %02X; want 81", result)
	}
	if result := Clear(7, 0xFF); result != 0x7F {
		t.Errorf("Clear(7, 0xFF) = %02X; want 7F", result)
	}
}

func TestColumn(t *testing.T) {
	for x := 0; x < 8; x++ {
		if result := Column(x); result != uint8(7-x) {
			t.Errorf("Column(%d) = %d; want %d", x, result, 7-x)
		}
	}
}

func TestPlaneBit(t *testing.T) {
	tests := []struct {
		value          uint8
		plane0, plane1 bool
	}{
		{0, false, false},
		{1, true, false},
		{2, false, true},
		{3, true, true},
	}

	for _, tt := range tests {
		if result := PlaneBit(tt.value, 0); result != tt.plane0 {
			t.Errorf("PlaneBit(%d, 0) = %v; want %v", tt.value, result, tt.plane0)
		}
		if result := PlaneBit(tt.value, 1); result != tt.plane1 {
			t.Errorf("PlaneBit(%d, 1) = %v; want %v", tt.value, result, tt.plane1)
		}
	}
}

func TestFromPlanes(t *testing.T) {
	// Low 0x3C, high 0x7E -> 0 2 3 3 3 3 2 0
	expected := []uint8{0, 2, 3, 3, 3, 3, 2, 0}
	for x := 0; x < 8; x++ {
		if result := FromPlanes(Column(x), 0x3C, 0x7E); result != expected[x] {
			t.Errorf("FromPlanes(pixel %d) = %d; want %d", x, result, expected[x])
		}
	}
}
