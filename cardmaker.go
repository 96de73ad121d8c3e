package flashdeck

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CardMaker generates flashcard source text using GPT-4o
type CardMaker struct {
	client *openai.Client
}

// NewCardMaker creates a new card maker with an OpenAI client
func NewCardMaker(apiKey string) *CardMaker {
	return &CardMaker{
		client: openai.NewClient(apiKey),
	}
}

// NewCardMakerWithClient creates a card maker around an existing client,
// mainly so tests can point it at a stub server.
func NewCardMakerWithClient(client *openai.Client) *CardMaker {
	return &CardMaker{client: client}
}

// GenerateCardText asks the model for term/definition pairs on the given
// topic and returns the raw response text. The prompt demands one
// "Term: Definition" pair per line; splitting that text into flashcards is
// the parser's job, so a sloppy response degrades to fewer cards rather
// than an error here.
func (cm *CardMaker) GenerateCardText(ctx context.Context, req GenerationRequest) (string, error) {
	VerboseLog("Generating %d flashcards for topic: %s", req.NumCards, req.Topic)

	resp, err := cm.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert flashcard author. You output only flashcard lines, one per line, in the exact form Term: Definition. No numbering, no blank commentary, no markdown.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: cm.buildPrompt(req),
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate flashcards: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from GPT-4o")
	}

	return resp.Choices[0].Message.Content, nil
}

func (cm *CardMaker) buildPrompt(req GenerationRequest) string {
	var sb strings.Builder

	numCards := req.NumCards
	if numCards <= 0 {
		numCards = 10
	}

	sb.WriteString(fmt.Sprintf("Generate %d flashcards about: %s\n\n", numCards, req.Topic))
	sb.WriteString("Requirements:\n")
	sb.WriteString("- One flashcard per line, formatted exactly as Term: Definition\n")
	sb.WriteString("- The term is a short word or phrase; the definition is one concise sentence\n")
	sb.WriteString("- Terms must be distinct from each other\n")
	sb.WriteString("- Do not number the lines or add any text that is not a flashcard\n")

	return sb.String()
}
