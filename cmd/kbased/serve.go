package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"kbase"
	kbhttp "kbase/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := kbhttp.NewServer()
	server.Addr = c.Addr
	server.Articles = deps.Articles
	server.Importer = deps.Importer
	server.Logger = deps.Logger
	if c.Rate > 0 {
		server.Limiter = kbhttp.NewClientLimiter(c.Rate, 1)
	}

	if c.Tokens != "" {
		auth, err := loadTokens(c.Tokens)
		if err != nil {
			return fmt.Errorf("failed to load token table: %w", err)
		}
		server.Auth = auth
	}

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	defer server.Close()

	deps.Logger.Info("serving", "url", server.URL())
	fmt.Fprintf(deps.Stdout, "Serving on %s\n", server.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}

// loadTokens reads a JSON file mapping bearer tokens to identities.
func loadTokens(path string) (*kbhttp.StaticAuthenticator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tokens map[string]kbase.Identity
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, err
	}
	return kbhttp.NewStaticAuthenticator(tokens), nil
}
