package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/product-compare/internal/catalog"
	"github.com/ahmednasr/product-compare/internal/conversation"
	"github.com/ahmednasr/product-compare/internal/service"
)

type cannedInferrer struct{ calls int }

func (c *cannedInferrer) Infer(ctx context.Context, prompt string) string {
	c.calls++
	return "**SuperPhone X** wins on camera."
}

func TestRunChatTurns(t *testing.T) {
	inf := &cannedInferrer{}
	store := conversation.NewStore(catalog.Sample())
	chat := service.NewChatService(store, inf)

	in := strings.NewReader("Which smartphone?\n\n   \n/products\nAnd the cheaper one?\n/quit\nnever sent\n")
	var out bytes.Buffer
	require.NoError(t, runChat(context.Background(), in, &out, chat, nil))

	assert.Equal(t, 2, inf.calls)
	assert.Equal(t, 5, store.Len())
	assert.Contains(t, out.String(), conversation.Greeting)
	assert.Contains(t, out.String(), "Analyzing products...")
	assert.Contains(t, out.String(), "**SuperPhone X** wins on camera.")
	assert.Contains(t, out.String(), "## UltraPhone 12")
	assert.NotContains(t, out.String(), "never sent")
}

func TestRunChatReset(t *testing.T) {
	store := conversation.NewStore(catalog.Sample())
	chat := service.NewChatService(store, &cannedInferrer{})

	in := strings.NewReader("hello\n/reset\n")
	var out bytes.Buffer
	require.NoError(t, runChat(context.Background(), in, &out, chat, nil))

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 2, strings.Count(out.String(), conversation.Greeting))
}

func TestProductsMarkdown(t *testing.T) {
	md := productsMarkdown(catalog.Sample())
	assert.Contains(t, md, "## SuperPhone X")
	assert.Contains(t, md, "- **Price:** $799")
	assert.Equal(t, "_No products available._\n", productsMarkdown(nil))
}
