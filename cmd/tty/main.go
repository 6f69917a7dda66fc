// blocky-tty plays Blocky in the terminal.
//
// Usage:
//
//	blocky-tty                  - Menu, then the configured level
//	blocky-tty --level tiny     - Play a specific level
//	blocky-tty --watch          - Reload the level when its file changes
//
// Arrows move and jump, Space runs, Esc quits.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/blocky/levels"
	"github.com/milk9111/blocky/session"
	"github.com/milk9111/blocky/settings"
	"github.com/milk9111/blocky/tty"
)

var flags settings.Flags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "blocky-tty",
	Short:         "Blocky in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := flags.Load()
		if err != nil {
			return err
		}

		// The screen owns the terminal until exit; logs are held and
		// printed afterwards.
		var logs bytes.Buffer
		logger := s.Logger(&logs, "blocky-tty")
		defer func() { _, _ = os.Stderr.Write(logs.Bytes()) }()

		return run(s, logger)
	},
}

func init() {
	flags.Register(rootCmd)
}

func run(s settings.Settings, logger *log.Logger) error {
	sess, err := session.New(session.Options{
		Level:     s.Level,
		LevelsDir: s.LevelsDir,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	var watcher *levels.Watcher
	if s.HotReload {
		watcher, err = levels.NewWatcher(s.LevelsDir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", s.LevelsDir, err)
		}
		defer watcher.Close()
		logger.Info("watching levels", "dir", s.LevelsDir)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	l := &loop{
		screen:   screen,
		sess:     sess,
		renderer: tty.NewRenderer(screen),
		watcher:  watcher,
		logger:   logger,
	}
	l.run(time.Second / time.Duration(s.TPS))

	logger.Info("exit", "outcome", sess.Outcome())
	return nil
}

type loop struct {
	screen   tcell.Screen
	sess     *session.Session
	renderer *tty.Renderer
	watcher  *levels.Watcher
	logger   *log.Logger
	keys     tty.Keys
	mouse    tty.MenuMouse
}

func (l *loop) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	var changed <-chan string
	var watchErrs <-chan error
	if l.watcher != nil {
		changed = l.watcher.Events
		watchErrs = l.watcher.Errors
	}

	l.draw()
	for !l.sess.Done() {
		select {
		case ev := <-events:
			l.handle(ev)
		case path, ok := <-changed:
			if !ok {
				changed = nil
				continue
			}
			if err := l.sess.Reload(path); err != nil {
				l.logger.Error("reload failed", "path", path, "err", err)
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			l.logger.Warn("watch error", "err", err)
		case <-ticker.C:
			l.sess.Step(l.keys.Next())
			l.draw()
		}
	}
}

func (l *loop) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch l.sess.State() {
		case session.StateMenu:
			l.sess.MenuKey(tty.MenuKey(ev.Key(), ev.Rune()))
		case session.StateStart:
			l.keys.Reset()
			l.sess.AnyKey()
		case session.StatePlaying:
			l.keys.Handle(ev)
		}
	case *tcell.EventMouse:
		switch l.sess.State() {
		case session.StateMenu:
			w, h := l.screen.Size()
			if i := l.mouse.Handle(ev, l.sess.Menu, w, h); i >= 0 {
				l.sess.MenuClick(i)
			}
		case session.StateStart:
			if ev.Buttons()&tcell.Button1 != 0 {
				l.keys.Reset()
				l.sess.AnyKey()
			}
		}
	case *tcell.EventResize:
		l.screen.Sync()
	}
	l.draw()
}

func (l *loop) draw() {
	switch l.sess.State() {
	case session.StateMenu:
		l.renderer.DrawMenu(l.sess.Menu)
	case session.StateStart:
		l.renderer.DrawStart()
	case session.StatePlaying:
		l.renderer.DrawWorld(l.sess.World.Sprites())
	}
}
