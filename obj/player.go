package obj

import "github.com/jakecoffman/cp"

// Player is the single moving body. It is either grounded or airborne;
// OnGround is rederived every frame by the vertical collision pass.
type Player struct {
	Pos      cp.Vector
	Vel      cp.Vector
	Width    float64
	Height   float64
	OnGround bool

	cfg Config
}

func NewPlayer(x, y float64, cfg Config) *Player {
	return &Player{
		Pos:    cp.Vector{X: x, Y: y},
		Width:  cfg.PlayerWidth,
		Height: cfg.PlayerHeight,
		cfg:    cfg,
	}
}

// Rect returns the player's bounding box in world space.
func (p *Player) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.Width, Height: p.Height}
}

// Reset puts the player back at a spawn point, at rest and airborne.
func (p *Player) Reset(x, y float64) {
	p.Pos = cp.Vector{X: x, Y: y}
	p.Vel = cp.Vector{}
	p.OnGround = false
}

// Update runs one full frame: intent, gravity, then the horizontal and
// vertical moves. The order is what keeps ground detection and corners
// correct.
func (p *Player) Update(in Input, cw *CollisionWorld) Contact {
	p.ApplyIntent(in)
	p.ApplyGravity()
	c := p.MoveX(cw)
	return c.Merge(p.MoveY(cw))
}

// ApplyIntent turns input flags into velocity. Jumping needs ground contact.
// Left and right always override running, and with neither held the player
// stops.
func (p *Player) ApplyIntent(in Input) {
	if in.Up && p.OnGround {
		p.Vel.Y -= p.cfg.JumpImpulse
	}
	if in.Running {
		p.Vel.X = p.cfg.RunSpeed
	}
	if in.Left {
		p.Vel.X = -p.cfg.WalkSpeed
	}
	if in.Right {
		p.Vel.X = p.cfg.WalkSpeed
	}
	if !in.Left && !in.Right {
		p.Vel.X = 0
	}
}

// ApplyGravity accelerates an airborne player down to terminal velocity.
func (p *Player) ApplyGravity() {
	if p.OnGround {
		return
	}
	p.Vel.Y += p.cfg.Gravity
	if p.Vel.Y > p.cfg.TerminalVelocity {
		p.Vel.Y = p.cfg.TerminalVelocity
	}
}

// MoveX integrates horizontal velocity and resolves along x.
func (p *Player) MoveX(cw *CollisionWorld) Contact {
	p.Pos = p.Pos.Add(cp.Vector{X: p.Vel.X})
	return cw.Resolve(p, p.Vel.X, AxisX)
}

// MoveY integrates vertical velocity and resolves along y. The player is
// assumed airborne until the resolver proves a landing.
func (p *Player) MoveY(cw *CollisionWorld) Contact {
	p.Pos = p.Pos.Add(cp.Vector{Y: p.Vel.Y})
	p.OnGround = false
	return cw.Resolve(p, p.Vel.Y, AxisY)
}
