package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrTooManyAttempts is returned when the user keeps giving invalid answers.
var ErrTooManyAttempts = errors.New("too many invalid answers")

const defaultMaxAttempts = 5

// Prompter asks for values on a line-oriented terminal.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	maxAttempts int
}

// NewPrompter creates a prompter reading from reader and writing to writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader:      NewNonBlockingReader(reader),
		writer:      writer,
		maxAttempts: defaultMaxAttempts,
	}
}

// Text asks for a free-form value. validate returns the message to show when
// the answer is rejected, or "" to accept it.
func (p *Prompter) Text(ctx context.Context, label string, validate func(string) string) (string, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if _, err := fmt.Fprint(p.writer, FormatPrompt(label)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		answer, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}

		if validate == nil {
			return answer, nil
		}
		msg := validate(answer)
		if msg == "" {
			return answer, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatError(msg)); err != nil {
			return "", fmt.Errorf("failed to write validation error: %w", err)
		}
	}
	return "", ErrTooManyAttempts
}

// Choice lists options numbered from 1 and returns the index of the chosen one.
func (p *Prompter) Choice(ctx context.Context, label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to choose from")
	}

	if _, err := fmt.Fprintln(p.writer, FormatPrompt(label)); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, opt); err != nil {
			return 0, fmt.Errorf("failed to write option: %w", err)
		}
	}

	answer, err := p.Text(ctx, "Opção", func(s string) string {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n < 1 || n > len(options) {
			return fmt.Sprintf("Escolha um número entre 1 e %d", len(options))
		}
		return ""
	})
	if err != nil {
		return 0, err
	}

	n, _ := strconv.Atoi(answer)
	return n - 1, nil
}

// Confirm asks a yes/no question. An empty answer means no.
func (p *Prompter) Confirm(ctx context.Context, label string) (bool, error) {
	answer, err := p.Text(ctx, label+" [s/N]", func(s string) string {
		switch strings.ToLower(s) {
		case "", "s", "sim", "y", "yes", "n", "nao", "não", "no":
			return ""
		}
		return "Responda s ou n"
	})
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true, nil
	}
	return false, nil
}
