package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/blocky/common"
	"github.com/milk9111/blocky/levels"
	"github.com/milk9111/blocky/obj"
	"github.com/milk9111/blocky/session"
	"github.com/milk9111/blocky/settings"
)

// Gainsboro is the nearest named colour to the platform grey.
var tileColors = map[obj.Kind]color.Color{
	obj.KindPlatform: colornames.Gainsboro,
	obj.KindExit:     colornames.Red,
	obj.KindPlayer:   colornames.Blue,
}

type Game struct {
	sess     *session.Session
	settings settings.Settings
	logger   *log.Logger
	watcher  *levels.Watcher

	menu  *MenuUI
	input Input
	tiles map[obj.Kind]*ebiten.Image

	cursorX, cursorY int
}

func NewGame(s settings.Settings, logger *log.Logger) (*Game, error) {
	sess, err := session.New(session.Options{
		Level:     s.Level,
		LevelsDir: s.LevelsDir,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		sess:     sess,
		settings: s,
		logger:   logger,
		tiles:    make(map[obj.Kind]*ebiten.Image, len(tileColors)),
	}
	for kind, c := range tileColors {
		img := ebiten.NewImage(common.TileSize, common.TileSize)
		img.Fill(c)
		g.tiles[kind] = img
	}
	g.menu = NewMenuUI(g)
	g.cursorX, g.cursorY = ebiten.CursorPosition()

	if s.HotReload {
		w, err := levels.NewWatcher(s.LevelsDir)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", s.LevelsDir, err)
		}
		g.watcher = w
		logger.Info("watching levels", "dir", s.LevelsDir)
	}
	return g, nil
}

// Close stops the level watcher.
func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) Update() error {
	g.drainWatcher()

	switch g.sess.State() {
	case session.StateMenu:
		g.updateMenu()
	case session.StateStart:
		if anyPressed() {
			g.input.Reset()
			g.sess.AnyKey()
		}
	case session.StatePlaying:
		g.sess.Step(g.input.Poll())
	}

	if g.sess.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateMenu() {
	// Moving the mouse hands the highlight back to the buttons' hover state.
	if x, y := ebiten.CursorPosition(); x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.sess.Menu.Clear()
	}
	for _, k := range menuKeys() {
		g.sess.MenuKey(k)
	}
	g.menu.Mark(g.sess.Menu.Selected())
	g.menu.UI.Update()
}

func (g *Game) drainWatcher() {
	g.watcher.Poll(func(path string) {
		if err := g.sess.Reload(path); err != nil {
			g.logger.Error("reload failed", "path", path, "err", err)
		}
	}, func(err error) {
		g.logger.Warn("watch error", "err", err)
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	switch g.sess.State() {
	case session.StateMenu:
		g.menu.UI.Draw(screen)
	case session.StateStart:
		ebitenutil.DebugPrintAt(screen, "BLOCKY!", common.BaseWidth/2-21, common.BaseHeight/2-24)
		ebitenutil.DebugPrintAt(screen, "Press any key to start", common.BaseWidth/2-66, common.BaseHeight/2)
	case session.StatePlaying:
		g.drawWorld(screen)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.sess.World
	for _, s := range w.Sprites() {
		img := g.tiles[s.Kind]
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Rect.Width/common.TileSize, s.Rect.Height/common.TileSize)
		op.GeoM.Translate(s.Rect.X, s.Rect.Y)
		screen.DrawImage(img, op)
	}

	if g.settings.Debug {
		p := w.Player
		left, top := w.Camera.Offset()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Level: %s  Frame: %d  FPS: %.2f\nPos: %.1f,%.1f  Vel: %.1f,%.1f  Ground: %v\nCamera: %.0f,%.0f",
			g.sess.Level(), w.Frame(), ebiten.ActualFPS(),
			p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.OnGround, left, top,
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
