package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ahmednasr/product-compare/internal/models"
	"github.com/ahmednasr/product-compare/internal/prompt"
	"github.com/ahmednasr/product-compare/internal/render"
	"github.com/ahmednasr/product-compare/internal/service"
)

const chatHelp = "Commands: /products lists products in scope, /reset starts over, /quit exits."

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive comparison session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := openAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer assistant.Close()

			return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), assistant.Chat, opts.renderer())
		},
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a single question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := openAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer assistant.Close()

			reply, err := assistant.Chat.Submit(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), opts.renderer().Render(reply.Content))
			return err
		},
	}
}

func newProductsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := openAssistant(cmd.Context())
			if err != nil {
				return err
			}
			defer assistant.Close()

			_, err = fmt.Fprint(cmd.OutOrStdout(), opts.renderer().Render(productsMarkdown(assistant.Chat.Catalog())))
			return err
		},
	}
}

// runChat reads one message per line from in until EOF or /quit.
func runChat(ctx context.Context, in io.Reader, out io.Writer, chat service.ChatService, r *render.Renderer) error {
	transcript := chat.Transcript()
	for _, m := range transcript.Messages {
		printMessage(out, r, m)
	}
	fmt.Fprintln(out, chatHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			chat.Reset()
			printMessage(out, r, chat.Transcript().Messages[0])
			continue
		case "/products":
			fmt.Fprint(out, r.Render(productsMarkdown(chat.AvailableProducts())))
			continue
		case "/help":
			fmt.Fprintln(out, chatHelp)
			continue
		}

		fmt.Fprintln(out, "Analyzing products...")
		reply, err := chat.Submit(ctx, line)
		if err != nil {
			if errors.Is(err, service.ErrEmptyMessage) {
				continue
			}
			return err
		}
		printMessage(out, r, reply)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func printMessage(out io.Writer, r *render.Renderer, m models.Message) {
	if m.Role == models.RoleUser {
		fmt.Fprintf(out, "You: %s\n", m.Content)
		return
	}
	fmt.Fprint(out, r.Render(m.Content))
}

func productsMarkdown(products []models.Product) string {
	if len(products) == 0 {
		return "_No products available._\n"
	}
	var sb strings.Builder
	for _, p := range products {
		fmt.Fprintf(&sb, "## %s\n\n", p.Name)
		fmt.Fprintf(&sb, "- **Price:** $%s\n", prompt.FormatPrice(p.Price))
		fmt.Fprintf(&sb, "- **Category:** %s\n", p.Category)
		fmt.Fprintf(&sb, "- **Features:** %s\n", strings.Join(p.Features, ", "))
		fmt.Fprintf(&sb, "- **Pros:** %s\n", strings.Join(p.Pros, ", "))
		fmt.Fprintf(&sb, "- **Cons:** %s\n\n", strings.Join(p.Cons, ", "))
	}
	return sb.String()
}
