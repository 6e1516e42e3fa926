package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ahmednasr/product-compare/internal/config"
	"github.com/ahmednasr/product-compare/internal/legacychat"
)

func newLegacyAskCmd() *cobra.Command {
	var baseURL string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "legacy-ask <query...>",
		Short: "Send a query to the standalone chat backend (GET /chat?query=)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = config.LegacyChatURL()
			}
			if baseURL == "" {
				return errors.New("no backend URL: pass --url or set LEGACY_CHAT_URL")
			}

			client := legacychat.NewClient(baseURL, timeout)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), client.Reply(cmd.Context(), strings.Join(args, " ")))
			return err
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "backend base URL (defaults to LEGACY_CHAT_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}
