// blocky is a small tile platformer: run and jump through the level to
// reach the red exit.
//
// Usage:
//
//	blocky                  - Menu, then the configured level
//	blocky --level tiny     - Play a specific level
//	blocky --watch          - Reload the level when its file changes
//	blocky levels           - List the levels
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/blocky/common"
	"github.com/milk9111/blocky/levels"
	"github.com/milk9111/blocky/settings"
)

var flags settings.Flags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "blocky",
	Short:         "Blocky! A tile platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := flags.Load()
		if err != nil {
			return err
		}
		logger := s.Logger(os.Stderr, "blocky")
		logger.Debug("settings", "source", s.Source, "level", s.Level)

		game, err := NewGame(s, logger)
		if err != nil {
			logger.Error("startup failed", "err", err)
			return err
		}
		defer game.Close()

		ebiten.SetWindowTitle(s.Window.Title)
		ebiten.SetWindowSize(int(common.BaseWidth*s.Window.Scale), int(common.BaseHeight*s.Window.Scale))
		ebiten.SetTPS(s.TPS)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		logger.Info("exit", "outcome", game.sess.Outcome())
		return nil
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := levels.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			rows, err := levels.Load("", name)
			if err != nil {
				return err
			}
			width := 0
			if len(rows) > 0 {
				width = len([]rune(rows[0]))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %dx%d\n", name, width, len(rows))
		}
		return nil
	},
}

func init() {
	flags.Register(rootCmd)
	rootCmd.AddCommand(levelsCmd)
}
