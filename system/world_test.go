package system

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/milk9111/blocky/obj"
)

func TestWorldWithConfig(t *testing.T) {
	cfg := obj.DefaultConfig()
	cfg.Gravity = 0.5
	cfg.WalkSpeed = 4

	rows := make([]string, 20)
	for i := range rows {
		rows[i] = strings.Repeat(" ", 30)
	}
	w := NewWorld(rows, WithConfig(cfg), WithSpawn(64, 64))
	if w.Config().Gravity != 0.5 {
		t.Fatalf("expected tuned config, got %+v", w.Config())
	}

	w.Step(obj.Input{Right: true})
	if w.Player.Vel.Y != 0.5 || w.Player.Pos.Y != 64.5 {
		t.Fatalf("expected gravity 0.5 applied, vy=%v y=%v", w.Player.Vel.Y, w.Player.Pos.Y)
	}
	if w.Player.Pos.X != 68 {
		t.Fatalf("expected walk speed 4, got x=%v", w.Player.Pos.X)
	}
}

func TestWorldPhaseOrder(t *testing.T) {
	w := NewWorld([]string{"PPP"})
	want := []string{PhaseIntent, PhaseGravity, PhaseHorizontal, PhaseVertical, PhaseCamera}
	if got := w.Phases(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected phases %v, got %v", want, got)
	}
}

func TestWorldSpawn(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		opts  []Option
		wantX float64
		wantY float64
	}{
		{"default", []string{"PPPP"}, nil, 32, 32},
		{"spawn_cell", []string{"    ", "  S "}, nil, 64, 32},
		{"option_wins", []string{"  S "}, []Option{WithSpawn(96, 0)}, 96, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(c.rows, c.opts...)
			if w.Player.Pos.X != c.wantX || w.Player.Pos.Y != c.wantY {
				t.Fatalf("expected spawn (%v,%v), got (%v,%v)", c.wantX, c.wantY, w.Player.Pos.X, w.Player.Pos.Y)
			}
		})
	}
}

func TestWorldStepLandsAndFollows(t *testing.T) {
	rows := make([]string, 0, 30)
	for i := 0; i < 29; i++ {
		rows = append(rows, strings.Repeat(" ", 60))
	}
	rows = append(rows, strings.Repeat("P", 60))

	w := NewWorld(rows, WithSpawn(960, 800))
	for i := 0; i < 120; i++ {
		if out := w.Step(obj.Input{}); out != OutcomeContinue {
			t.Fatalf("frame %d: unexpected outcome %v", i, out)
		}
	}

	// Floor top is at 29*32; the player rests on it.
	if w.Player.Rect().Bottom() != 928 {
		t.Fatalf("expected player resting on floor, bottom=%v", w.Player.Rect().Bottom())
	}
	if w.Frame() != 120 {
		t.Fatalf("expected 120 frames, got %d", w.Frame())
	}

	left, top := w.Camera.Offset()
	if left != -560 {
		t.Fatalf("expected camera left -560, got %v", left)
	}
	// Level height 960, viewport 640: bottom clamp.
	if top != -320 {
		t.Fatalf("expected camera top -320, got %v", top)
	}
}

func TestWorldExitEndsLevel(t *testing.T) {
	w := NewWorld([]string{"    ", "   E", "PPPP"}, WithSpawn(62, 32))

	out := w.Step(obj.Input{Right: true})
	if out != OutcomeLevelComplete {
		t.Fatalf("expected level complete, got %v", out)
	}
	if !w.Contact().Exit {
		t.Fatalf("expected exit contact")
	}

	frame := w.Frame()
	x := w.Player.Pos.X
	for i := 0; i < 5; i++ {
		if out := w.Step(obj.Input{Left: true}); out != OutcomeLevelComplete {
			t.Fatalf("expected outcome to stick, got %v", out)
		}
	}
	if w.Frame() != frame || w.Player.Pos.X != x {
		t.Fatalf("world advanced after level completion")
	}
}

func TestWorldExitMovingRightSlowly(t *testing.T) {
	w := NewWorld([]string{" E"}, WithSpawn(0, 0))

	w.Begin(obj.Input{})
	w.Player.Vel.X = 3
	w.RunPhase(PhaseHorizontal)
	out := w.Finish()
	if out != OutcomeLevelComplete {
		t.Fatalf("expected level complete, got %v", out)
	}
	if w.Player.Pos.X != 0 {
		t.Fatalf("exit tiles are solid; expected x=0, got %v", w.Player.Pos.X)
	}
}

func TestWorldUserQuit(t *testing.T) {
	w := NewWorld([]string{"PPPP"})
	if out := w.Step(obj.Input{Quit: true, Right: true}); out != OutcomeUserQuit {
		t.Fatalf("expected user quit, got %v", out)
	}
	if w.Frame() != 0 {
		t.Fatalf("quit must not simulate, frame=%d", w.Frame())
	}
	if !w.Outcome().Done() {
		t.Fatalf("expected done outcome")
	}
}

func TestWorldPhaseByPhase(t *testing.T) {
	w := NewWorld([]string{"", "PPPP"}, WithSpawn(32, -5))
	w.Player.Vel.Y = 5

	w.Begin(obj.Input{Right: true})
	if !w.RunPhase(PhaseIntent) {
		t.Fatalf("intent phase missing")
	}
	if w.Player.Vel.X != 8 {
		t.Fatalf("expected vx=8 after intent, got %v", w.Player.Vel.X)
	}

	w.RunPhase(PhaseGravity)
	if math.Abs(w.Player.Vel.Y-5.3) > 1e-9 {
		t.Fatalf("expected vy=5.3 after gravity, got %v", w.Player.Vel.Y)
	}

	w.RunPhase(PhaseHorizontal)
	if w.Player.Pos.X != 40 {
		t.Fatalf("expected x=40, got %v", w.Player.Pos.X)
	}

	w.RunPhase(PhaseVertical)
	if !w.Player.OnGround || w.Player.Rect().Bottom() != 32 {
		t.Fatalf("expected landing, ground=%v bottom=%v", w.Player.OnGround, w.Player.Rect().Bottom())
	}

	w.RunPhase(PhaseCamera)
	if w.RunPhase("missing") {
		t.Fatalf("unknown phase should report false")
	}
	if out := w.Finish(); out != OutcomeContinue {
		t.Fatalf("expected continue, got %v", out)
	}
}

func TestWorldReload(t *testing.T) {
	t.Run("keeps_player_inside", func(t *testing.T) {
		w := NewWorld([]string{"      ", "      ", "PPPPPP"}, WithSpawn(32, 32))
		w.Player.Pos.X = 96
		w.Reload([]string{"      ", "      ", "PPPPPP", "PPPPPP"})
		if w.Player.Pos.X != 96 {
			t.Fatalf("expected player kept at x=96, got %v", w.Player.Pos.X)
		}
		if w.Level.Height() != 128 {
			t.Fatalf("expected new level height 128, got %v", w.Level.Height())
		}
	})

	t.Run("respawns_when_outside", func(t *testing.T) {
		w := NewWorld([]string{"      ", "      ", "PPPPPP"}, WithSpawn(32, 32))
		w.Player.Pos.X = 160
		w.Reload([]string{"   ", "   ", "PPP"})
		if w.Player.Pos.X != 32 || w.Player.Pos.Y != 32 {
			t.Fatalf("expected respawn at (32,32), got (%v,%v)", w.Player.Pos.X, w.Player.Pos.Y)
		}
	})

	t.Run("respawns_when_embedded", func(t *testing.T) {
		w := NewWorld([]string{"      ", "      ", "PPPPPP"}, WithSpawn(32, 32))
		w.Player.Pos.X = 96
		w.Reload([]string{"      ", "   P  ", "PPPPPP"})
		if w.Player.Pos.X != 32 {
			t.Fatalf("expected respawn at x=32, got %v", w.Player.Pos.X)
		}
	})
}

func TestWorldSprites(t *testing.T) {
	w := NewWorld([]string{"P E", "PPP"}, WithSpawn(32, 0))
	sprites := w.Sprites()

	if len(sprites) != 6 {
		t.Fatalf("expected 6 sprites, got %d", len(sprites))
	}
	last := sprites[len(sprites)-1]
	if last.Kind != obj.KindPlayer {
		t.Fatalf("expected player drawn last, got %v", last.Kind)
	}

	// The level is narrower than the viewport, so the camera is pinned by
	// the right-edge clamp at 800-96.
	if last.Rect.X != 32+704 {
		t.Fatalf("expected player at screen x=%v, got %v", 32+704, last.Rect.X)
	}
	if sprites[1].Kind != obj.KindExit {
		t.Fatalf("expected exit second, got %v", sprites[1].Kind)
	}
}

func TestWorldSpritesCullsOffscreenTiles(t *testing.T) {
	w := NewWorld([]string{strings.Repeat("P", 100)}, WithSpawn(0, 0))
	sprites := w.Sprites()
	// 25 tiles fit in the 800 pixel viewport, plus the player.
	if len(sprites) != 26 {
		t.Fatalf("expected 26 sprites, got %d", len(sprites))
	}
}

func TestWorldSpritesCullsAgainstScrolledViewport(t *testing.T) {
	w := NewWorld([]string{strings.Repeat("P", 100)}, WithSpawn(1600, 0))
	if got := w.Camera.Viewport(); got.X != 1200 || got.Width != 800 {
		t.Fatalf("expected viewport from x=1200, got %+v", got)
	}

	sprites := w.Sprites()
	// Tiles 37 to 62 touch the viewport, 37 only by half.
	if len(sprites) != 27 {
		t.Fatalf("expected 26 tiles plus the player, got %d", len(sprites))
	}
	if sprites[0].Rect.X != 37*32-1200 {
		t.Fatalf("expected first tile at screen x=%d, got %v", 37*32-1200, sprites[0].Rect.X)
	}
}
