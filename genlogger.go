package flashdeck

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// GenLogger handles audit logging of one flashcard generation: the prompt
// sent, the raw model output, and what the parser made of it.
type GenLogger struct {
	file  *os.File
	mu    sync.Mutex
	genID string
}

// NewGenLogger creates a log file for a specific generation attempt
func NewGenLogger(logDir, genID string, req GenerationRequest) (*GenLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := filepath.Join(logDir, fmt.Sprintf("%s.log", genID))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &GenLogger{
		file:  file,
		genID: genID,
	}

	logger.Logf("=== Flashcard Generation Log ===\n")
	logger.Logf("Generation ID: %s\n", genID)
	logger.Logf("Topic: %s\n", req.Topic)
	logger.Logf("Requested Cards: %d\n", req.NumCards)
	logger.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	logger.Logf("===============================\n\n")

	return logger, nil
}

// Logf writes a formatted log entry with timestamp
func (gl *GenLogger) Logf(format string, args ...interface{}) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(gl.file, "[%s] %s", timestamp, message)
	gl.file.Sync()
}

// LogRequest logs the prompt sent to the model
func (gl *GenLogger) LogRequest(prompt string) {
	gl.Logf("=== LLM REQUEST ===\n")
	gl.Logf("Prompt:\n%s\n", prompt)
	gl.Logf("===================\n\n")
}

// LogResponse logs the raw model output
func (gl *GenLogger) LogResponse(text string) {
	gl.Logf("=== LLM RESPONSE ===\n")
	gl.Logf("Response:\n%s\n", text)
	gl.Logf("====================\n\n")
}

// LogParseResult logs how many lines survived parsing
func (gl *GenLogger) LogParseResult(parsed, lines int) {
	gl.Logf("Parsed %d flashcards from %d lines\n", parsed, lines)
}

// Close closes the log file
func (gl *GenLogger) Close() error {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if gl.file != nil {
		fmt.Fprintf(gl.file, "[%s] === Generation Complete: %s ===\n",
			time.Now().Format("15:04:05.000"), time.Now().Format(time.RFC3339))
		return gl.file.Close()
	}
	return nil
}
