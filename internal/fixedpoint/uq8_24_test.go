package fixedpoint

import "testing"

func TestFromRatioRoundTrip(t *testing.T) {
	cases := []struct{ a, b uint32 }{
		{1000, 1000}, {16, 1000}, {1, 3}, {735, 44100}, {255, 1},
	}
	for _, c := range cases {
		v := FromRatio(c.a, c.b)
		// from_ratio(a, b).integer() * b + remainder == a, within the
		// precision 24 fractional bits afford.
		whole := uint64(v.Integer()) * uint64(c.b)
		frac := (uint64(v.Fraction()) * uint64(c.b)) >> 24
		got := whole + frac
		if got > uint64(c.a) || c.a-uint32(got) > 1 {
			t.Errorf("FromRatio(%d,%d): reconstructed %d, want ~%d", c.a, c.b, got, c.a)
		}
	}
}

func TestAddWraps(t *testing.T) {
	v := UQ8_24(0xFFFFFFFF)
	got := v.Add(UQ8_24(2))
	if uint32(got) != 1 {
		t.Errorf("Add did not wrap: got %#x, want 1", uint32(got))
	}
}

func TestIntegerFraction(t *testing.T) {
	v := FromParts(5, 1<<23) // 5.5
	if v.Integer() != 5 {
		t.Errorf("Integer() = %d, want 5", v.Integer())
	}
	if v.Fraction() != 1<<23 {
		t.Errorf("Fraction() = %d, want %d", v.Fraction(), uint32(1)<<23)
	}
}

func TestGravityAccumulation(t *testing.T) {
	// ms_per_tick=16, gravity_ms_per_cell=1000 -> ~62 ticks per cell.
	step := FromRatio(16, 1000)
	var acc UQ8_24
	ticks := 0
	for acc.Integer() < 1 {
		acc = acc.Add(step)
		ticks++
		if ticks > 1000 {
			t.Fatal("gravity never accumulated a full cell")
		}
	}
	if ticks < 60 || ticks > 64 {
		t.Errorf("expected ~62 ticks per cell at 16ms/1000ms gravity, got %d", ticks)
	}
}
