// dighack is a terminal dungeon crawler.
//
//	dighack [play]     resume the default slot, or start a new game
//	dighack new        start a new game; without --slot it gets a fresh slot
//	dighack load       continue the slot; fails if it is empty
//	dighack saves      list slots
//	dighack rm SLOT    delete a slot
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"dighack/internal/client"
	"dighack/internal/config"
	"dighack/internal/game"
	"dighack/internal/save"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	slotFlag string
	seedFlag int64
)

var rootCmd = &cobra.Command{
	Use:           "dighack",
	Short:         "A turn-based dungeon crawler",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), modeResume)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Resume the slot, or start a new game in it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), modeResume)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new game, replacing the slot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), modeNew)
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Continue a saved game",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), modeLoad)
	},
}

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, closeStore, err := cfg.OpenStore()
		if err != nil {
			return err
		}
		defer closeStore()
		slots, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range slots {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm SLOT",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, closeStore, err := cfg.OpenStore()
		if err != nil {
			return err
		}
		defer closeStore()
		return store.Delete(cmd.Context(), args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd, newCmd, loadCmd} {
		c.Flags().StringVar(&slotFlag, "slot", "", "save slot (overrides DIGHACK_SLOT)")
		c.Flags().Int64Var(&seedFlag, "seed", 0, "world seed for a new game (overrides DIGHACK_SEED)")
	}
	rootCmd.AddCommand(playCmd, newCmd, loadCmd, savesCmd, rmCmd)
}

type playMode uint8

const (
	modeResume playMode = iota
	modeNew
	modeLoad
)

func play(ctx context.Context, mode playMode) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if seedFlag != 0 {
		cfg.Seed = seedFlag
	}
	slot := slotFlag
	if slot == "" {
		slot = cfg.Slot
	}
	if slot == "" && mode == modeNew {
		slot = "run-" + uuid.NewString()[:8]
	}
	if slot == "" {
		slot = "default"
	}
	if err := save.ValidateSlot(slot); err != nil {
		return err
	}

	store, closeStore, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	var engine *game.Engine
	switch mode {
	case modeNew:
		engine, err = game.New(cfg.Params(), cfg.ResolveSeed())
	case modeLoad:
		engine, err = save.LoadEngine(ctx, store, slot)
	default:
		engine, _, err = client.Resume(ctx, store, slot, cfg.Params(), cfg.ResolveSeed())
	}
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	// Hold log output while the terminal is in full-screen mode.
	var held bytes.Buffer
	log.SetOutput(&held)
	err = client.Run(ctx, screen, engine, store, slot)
	screen.Fini()
	log.SetOutput(os.Stderr)
	_, _ = held.WriteTo(os.Stderr)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
