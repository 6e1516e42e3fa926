// Command compare-chat is a terminal client for the product comparison assistant.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ahmednasr/product-compare/internal/bootstrap"
	"github.com/ahmednasr/product-compare/internal/config"
	"github.com/ahmednasr/product-compare/internal/logging"
	"github.com/ahmednasr/product-compare/internal/render"
)

type rootOptions struct {
	provider string
	logLevel string
	style    string
	width    int
	raw      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "compare-chat",
		Short:         "Ask an AI assistant to compare products from the catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.provider != "" {
				if err := os.Setenv("LLM_PROVIDER", opts.provider); err != nil {
					return err
				}
			}
			logging.Init(opts.logLevel, "console")
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.provider, "provider", "", "LLM provider (huggingface, vertex, echo); overrides LLM_PROVIDER")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flags.StringVar(&opts.style, "style", "auto", "markdown style (auto, dark, light, notty)")
	flags.IntVar(&opts.width, "width", 100, "word wrap width for rendered answers")
	flags.BoolVar(&opts.raw, "raw", false, "print answers without markdown rendering")

	rootCmd.AddCommand(
		newChatCmd(opts),
		newAskCmd(opts),
		newProductsCmd(opts),
		newLegacyAskCmd(),
	)
	return rootCmd
}

// openAssistant loads configuration and wires the assistant.
func openAssistant(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

func (o *rootOptions) renderer() *render.Renderer {
	if o.raw {
		return nil
	}
	r, err := render.NewRenderer(o.style, o.width)
	if err != nil {
		log.Warn().Err(err).Msg("markdown rendering disabled")
		return nil
	}
	return r
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("compare-chat failed")
		stop()
		os.Exit(1)
	}
}
