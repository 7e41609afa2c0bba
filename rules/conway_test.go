package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantLive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantLive {
			t.Fatalf("live cell with %d neighbors survives=%v, expected %v", n, got, wantLive)
		}
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors born=%v, expected %v", n, got, wantBorn)
		}
	}
}

func TestFlips(t *testing.T) {
	cases := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{0, false, false},
		{3, false, true},
		{2, false, false},
		{1, true, true},
		{2, true, false},
		{3, true, false},
		{4, true, true},
	}
	for _, c := range cases {
		if got := Flips(c.neighbors, c.alive); got != c.want {
			t.Fatalf("Flips(%d, %v)=%v, expected %v", c.neighbors, c.alive, got, c.want)
		}
	}
}
