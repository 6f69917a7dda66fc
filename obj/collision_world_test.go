package obj

import "testing"

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(x, y, DefaultConfig())
}

func TestResolveHorizontal(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		x     float64
		vel   float64
		wantX float64
		hits  int
	}{
		{"right_into_wall", []string{"  P"}, 38, 8, 32, 1},
		{"left_into_wall", []string{"P  "}, 28, -8, 32, 1},
		{"no_velocity_no_correction", []string{"  P"}, 38, 0, 38, 1},
		{"clear", []string{"P   P"}, 40, 8, 40, 0},
		{"touching_is_not_overlap", []string{"  P"}, 32, 8, 32, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cw := NewCollisionWorld(BuildLevel(c.rows, 32))
			p := newTestPlayer(c.x, 0)
			contact := cw.Resolve(p, c.vel, AxisX)
			if p.Pos.X != c.wantX {
				t.Fatalf("expected x=%v, got %v", c.wantX, p.Pos.X)
			}
			if contact.Hits != c.hits {
				t.Fatalf("expected %d hits, got %d", c.hits, contact.Hits)
			}
			if contact.Grounded || p.OnGround {
				t.Fatalf("horizontal pass must not ground the player")
			}
		})
	}
}

func TestResolveVertical(t *testing.T) {
	t.Run("falling_lands", func(t *testing.T) {
		cw := NewCollisionWorld(BuildLevel([]string{"", "PPP"}, 32))
		p := newTestPlayer(32, 4)
		p.Vel.Y = 6
		contact := cw.Resolve(p, p.Vel.Y, AxisY)
		if p.Pos.Y != 0 || !p.OnGround || p.Vel.Y != 0 || !contact.Grounded {
			t.Fatalf("expected landing at y=0, got y=%v ground=%v vy=%v", p.Pos.Y, p.OnGround, p.Vel.Y)
		}
	})

	t.Run("rising_bumps_head", func(t *testing.T) {
		cw := NewCollisionWorld(BuildLevel([]string{"PPP"}, 32))
		p := newTestPlayer(32, 20)
		p.Vel.Y = -9
		contact := cw.Resolve(p, p.Vel.Y, AxisY)
		if p.Pos.Y != 32 {
			t.Fatalf("expected y=32, got %v", p.Pos.Y)
		}
		if p.OnGround || contact.Grounded {
			t.Fatalf("hitting a ceiling must not ground the player")
		}
		if p.Vel.Y != -9 {
			t.Fatalf("ceiling contact keeps velocity, got %v", p.Vel.Y)
		}
	})

	t.Run("zero_velocity_keeps_overlap", func(t *testing.T) {
		cw := NewCollisionWorld(BuildLevel([]string{"", "P"}, 32))
		p := newTestPlayer(0, 10)
		contact := cw.Resolve(p, 0, AxisY)
		if p.Pos.Y != 10 || p.OnGround {
			t.Fatalf("expected no correction, got y=%v ground=%v", p.Pos.Y, p.OnGround)
		}
		if contact.Hits != 1 {
			t.Fatalf("expected the overlap to be counted, got %d", contact.Hits)
		}
	})
}

func TestResolveExit(t *testing.T) {
	axes := []struct {
		name string
		axis Axis
		vel  float64
	}{
		{"x_positive", AxisX, 3},
		{"x_negative", AxisX, -3},
		{"x_zero", AxisX, 0},
		{"y_positive", AxisY, 3},
		{"y_negative", AxisY, -3},
	}

	for _, a := range axes {
		t.Run(a.name, func(t *testing.T) {
			cw := NewCollisionWorld(BuildLevel([]string{" E"}, 32))
			p := newTestPlayer(16, 0)
			contact := cw.Resolve(p, a.vel, a.axis)
			if !contact.Exit {
				t.Fatalf("expected exit contact")
			}
		})
	}
}

func TestResolveLastOverlapWins(t *testing.T) {
	// Moving left into two adjacent tiles: the first correction pushes the
	// player into the second tile, whose correction is applied last.
	cw := NewCollisionWorld(BuildLevel([]string{" PP"}, 32))
	p := newTestPlayer(40, 0)
	contact := cw.Resolve(p, -40, AxisX)
	if p.Pos.X != 96 {
		t.Fatalf("expected x=96, got %v", p.Pos.X)
	}
	if contact.Hits != 2 {
		t.Fatalf("expected 2 hits, got %d", contact.Hits)
	}

	// Moving right, the first correction clears the second tile, which is
	// then not touched.
	p = newTestPlayer(40, 0)
	contact = cw.Resolve(p, 40, AxisX)
	if p.Pos.X != 0 || contact.Hits != 1 {
		t.Fatalf("expected x=0 with 1 hit, got x=%v hits=%d", p.Pos.X, contact.Hits)
	}
}

func TestContactMerge(t *testing.T) {
	a := Contact{Hits: 1, Exit: true}
	b := Contact{Hits: 2, Grounded: true}
	got := a.Merge(b)
	if got != (Contact{Hits: 3, Exit: true, Grounded: true}) {
		t.Fatalf("unexpected merge result %+v", got)
	}
}

func TestOverlapping(t *testing.T) {
	cw := NewCollisionWorld(BuildLevel([]string{"PEP"}, 32))
	got := cw.Overlapping(Rect{X: 16, Y: 0, Width: 32, Height: 32})
	if len(got) != 2 || got[0].Kind != KindPlatform || got[1].Kind != KindExit {
		t.Fatalf("unexpected overlap set %+v", got)
	}
}
