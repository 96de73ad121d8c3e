package flashdeck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	// ErrEmptyTopic is returned before any network call when the topic is
	// blank.
	ErrEmptyTopic = errors.New("no topic provided")

	// ErrNoCards is returned when the generation call succeeded but no line
	// of the response parsed into a flashcard. Distinct from a transport or
	// service failure, which is reported with the underlying error.
	ErrNoCards = errors.New("the response contained no usable flashcards")
)

// Generator orchestrates one flashcard generation: prompt the model, parse
// the response into cards, and leave an audit log of the exchange.
type Generator struct {
	maker  *CardMaker
	logDir string
}

// NewGenerator creates a new flashcard generator
func NewGenerator(apiKey, logDir string) *Generator {
	return &Generator{
		maker:  NewCardMaker(apiKey),
		logDir: logDir,
	}
}

// NewGeneratorWithMaker creates a generator around an existing card maker,
// mainly for tests that stub the model out.
func NewGeneratorWithMaker(maker *CardMaker, logDir string) *Generator {
	return &Generator{maker: maker, logDir: logDir}
}

// Generate produces flashcards for the given topic. On any failure the
// caller's existing deck must be left untouched; Generate itself never
// mutates shared state, it only returns the new cards or an error.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) ([]Flashcard, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrEmptyTopic
	}

	genID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	log.Printf("Starting flashcard generation %s for topic: %s", genID, req.Topic)

	logger, err := NewGenLogger(g.logDir, genID, req)
	if err != nil {
		log.Printf("Failed to create generation log for %s: %v", genID, err)
		// Continue without audit logging rather than failing
		logger = nil
	} else {
		defer logger.Close()
	}

	if logger != nil {
		logger.LogRequest(g.maker.buildPrompt(req))
	}

	raw, err := g.maker.GenerateCardText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if logger != nil {
		logger.LogResponse(raw)
	}

	cards := ParseFlashcards(raw)
	if logger != nil {
		logger.LogParseResult(len(cards), strings.Count(raw, "\n")+1)
	}

	if len(cards) == 0 {
		return nil, ErrNoCards
	}

	log.Printf("Generation %s complete: %d flashcards for topic '%s'", genID, len(cards), req.Topic)
	return cards, nil
}
