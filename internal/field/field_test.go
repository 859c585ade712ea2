package field

import "testing"

func TestTotalSize(t *testing.T) {
	for h := 1; h <= 5; h++ {
		for v := 1; v <= 5; v++ {
			size := TotalSize(h, v)
			if size.W != 900*h || size.H != 1350*v {
				t.Errorf("TotalSize(%d, %d) = %+v, expected {%d %d}", h, v, size, 900*h, 1350*v)
			}
		}
	}

	// Counts below 1 behave like 1
	if size := TotalSize(0, -3); size != (Size{W: 900, H: 1350}) {
		t.Errorf("TotalSize(0, -3) = %+v, expected {900 1350}", size)
	}

	// Counts above MaxCount behave like MaxCount, no overflow
	if size := TotalSize(1<<60, MaxCount+1); size != (Size{W: 900 * MaxCount, H: 1350 * MaxCount}) {
		t.Errorf("TotalSize(1<<60, %d) = %+v, expected {%d %d}", MaxCount+1, size, 900*MaxCount, 1350*MaxCount)
	}
}

func TestFlipY(t *testing.T) {
	size := TotalSize(2, 3)
	for y := 0; y <= size.H; y += 50 {
		if got := size.FlipY(y); got != size.H-y {
			t.Errorf("FlipY(%d) = %d, expected %d", y, got, size.H-y)
		}
	}
}

func TestSizeContains(t *testing.T) {
	size := Size{W: 900, H: 1350}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"far corner", Pt(900, 1350), true},
		{"inside", Pt(450, 700), true},
		{"left of field", Pt(-1, 10), false},
		{"right of field", Pt(901, 10), false},
		{"below field", Pt(10, -1), false},
		{"above field", Pt(10, 1351), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := size.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestSizeClamp(t *testing.T) {
	size := Size{W: 900, H: 1350}
	if got := size.Clamp(Pt(-50, 2000)); got != Pt(0, 1350) {
		t.Errorf("Clamp(-50, 2000) = %v, expected (0,1350)", got)
	}
	if got := size.Clamp(Pt(400, 400)); got != Pt(400, 400) {
		t.Errorf("Clamp should keep inside points, got %v", got)
	}
}
