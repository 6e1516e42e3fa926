// Package prompt renders the catalog, the instructions and the transcript into
// the single text block sent to a completion endpoint.
package prompt

import (
	"strconv"
	"strings"

	"github.com/ahmednasr/product-compare/internal/models"
)

// AssistantCue ends every prompt; the model is expected to continue after it.
const AssistantCue = "Assistant:"

const preamble = "You are a helpful product comparison assistant. Use the following product information to answer user questions:"

const rules = `When comparing products:
1. Focus on relevant features for the user's needs
2. Highlight price differences and value propositions
3. Be objective in your analysis
4. If you don't have information about specific products, say so
5. Ask follow-up questions to clarify user preferences if needed`

// Build assembles the prompt. history is the transcript before userMessage.
//
// User text is inserted verbatim, so a message containing "User:" or
// "Assistant:" lines reads like extra turns to the model.
func Build(products []models.Product, history []models.Message, userMessage string) string {
	var sb strings.Builder

	sb.WriteString(preamble)
	sb.WriteString("\n\n")
	sb.WriteString(Products(products))
	sb.WriteString("\n\n")
	sb.WriteString(rules)
	sb.WriteString("\n\nPrevious conversation:\n")
	sb.WriteString(Transcript(history))
	sb.WriteString("\n\nUser: ")
	sb.WriteString(userMessage)
	sb.WriteString("\n\n")
	sb.WriteString(AssistantCue)

	return sb.String()
}

// Products renders each product as a four-line block, blocks separated by a blank line.
func Products(products []models.Product) string {
	blocks := make([]string, 0, len(products))
	for _, p := range products {
		blocks = append(blocks, "Product: "+p.Name+", Price: $"+FormatPrice(p.Price)+", Category: "+p.Category+
			"\nFeatures: "+strings.Join(p.Features, ", ")+
			"\nPros: "+strings.Join(p.Pros, ", ")+
			"\nCons: "+strings.Join(p.Cons, ", "))
	}
	return strings.Join(blocks, "\n\n")
}

// Transcript renders messages as "User: ..." / "Assistant: ..." lines.
func Transcript(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, m.Role.Speaker()+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// FormatPrice prints the shortest decimal representation (799, 799.5).
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
