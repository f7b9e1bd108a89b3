// dighack-server serves the dungeon over SSH. Every connection plays its
// own game, saved under a slot named after the SSH user.
//
// Usage:
//
//	dighack-server [--addr :2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 hero@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dighack/internal/client"
	"dighack/internal/config"
	"dighack/internal/game"
	"dighack/internal/save"
	internalssh "dighack/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

var (
	addrFlag string
	keyFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "dighack-server",
	Short: "Serve dighack over SSH",
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides DIGHACK_SSH_ADDR)")
	rootCmd.Flags().StringVar(&keyFlag, "key", "", "PEM host key path, generated if absent (overrides DIGHACK_HOST_KEY)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addrFlag != "" {
		cfg.SSHAddr = addrFlag
	}
	if keyFlag != "" {
		cfg.HostKey = keyFlag
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

	signer, err := loadOrCreateHostKey(cfg.HostKey)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := newServer(cfg, store, signer)
	go func() {
		<-ctx.Done()
		log.Println("Received shutdown signal, gracefully stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("dighack SSH server listening on %s", cfg.SSHAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// newServer wires one independent game per SSH session.
func newServer(cfg config.Config, store save.Store, signer gossh.Signer) *gossh.Server {
	h := &handler{params: cfg.Params(), seed: cfg.Seed, store: store}
	return &gossh.Server{
		Addr:        cfg.SSHAddr,
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}
}

type handler struct {
	params game.Params
	seed   int64
	store  save.Store
}

// handleSession blocks for the lifetime of the connection.
func (h *handler) handleSession(s gossh.Session) {
	slot := internalssh.SlotName(s.User())
	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "%v\n", err)
		return
	}
	defer screen.Fini()

	seed := h.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, resumed, err := client.Resume(s.Context(), h.store, slot, h.params, seed)
	if err != nil {
		log.Printf("session %s: %v", slot, err)
		return
	}
	log.Printf("session %s start (game %s, resumed=%v) from %s", slot, engine.ID(), resumed, s.RemoteAddr())

	if err := client.Run(s.Context(), screen, engine, h.store, slot); err != nil {
		log.Printf("session %s: %v", slot, err)
	}
	log.Printf("session %s end", slot)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer, nil
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; a fresh key is generated next run otherwise.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dighack server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Printf("persist host key: %v", err)
		}
	}
	return signer, nil
}
