package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/service"
)

// printPasswords writes count passwords, one per line, generated from the
// stored settings. A positive length overrides the stored one.
func printPasswords(ctx context.Context, w io.Writer, settings *service.SettingsService, count, length int) error {
	s, err := settings.Get(ctx, localProfile)
	if err != nil {
		slog.Warn("loading settings failed, using defaults", "error", err)
	}

	opts := service.OptionsFromSettings(s)
	if length > 0 {
		opts.Length = length
	}

	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, password); err != nil {
			return err
		}
	}
	return nil
}
