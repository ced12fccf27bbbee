package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// tokenFile is where pkg/gcalendar looks for a desktop-app OAuth token.
const tokenFile = "token.json"

func newGCalAuthCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth [credentials.json]",
		Short: "Authorize Google Calendar access once and save the OAuth token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parse credentials (need an OAuth desktop app file): %w", err)
			}

			tok, err := exchangeToken(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("create %s: %w", tokenPath, err)
			}
			defer f.Close()
			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", tokenPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\ntoken saved to %s, restart the API to enable calendar sync\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenPath, "token", tokenFile, "where to write the token")
	return cmd
}

type tokenExchanger interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

func exchangeToken(ctx context.Context, cfg tokenExchanger, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}
