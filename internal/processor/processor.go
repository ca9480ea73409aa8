package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeberg.org/snonux/kirtis/internal/accent"
	"codeberg.org/snonux/kirtis/internal/analyzer"
	"codeberg.org/snonux/kirtis/internal/batch"
	"codeberg.org/snonux/kirtis/internal/cli"
	"codeberg.org/snonux/kirtis/internal/logging"
)

// Demo word and case printed when kirtis runs without arguments.
const (
	DemoWord = "gera"
	DemoCase = accent.Vardininkas
)

// ErrContractViolation is returned by ProcessBatch when the analyzer
// produced options that could not be rendered.
var ErrContractViolation = errors.New("analyzer returned unrenderable stress options")

// Processor handles the main word processing logic
type Processor struct {
	flags       *cli.Flags
	logger      *slog.Logger
	analyzer    accent.Analyzer
	accentuator *accent.Accentuator
	out         io.Writer
	closer      io.Closer
}

// Option configures a Processor.
type Option func(*Processor)

// WithAnalyzer replaces the analyzer built from the flags.
func WithAnalyzer(a accent.Analyzer) Option {
	return func(p *Processor) {
		p.analyzer = a
	}
}

// WithOutput redirects results, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(p *Processor) {
		p.out = w
	}
}

// WithLogger replaces the logger built from the flags.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a new word processor
func NewProcessor(flags *cli.Flags, opts ...Option) (*Processor, error) {
	p := &Processor{flags: flags, out: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		level, err := logging.ParseLevel(cli.LogLevel(flags))
		if err != nil {
			return nil, err
		}
		p.logger = logging.New(level)
	}

	if p.analyzer == nil {
		pipeline, err := analyzer.Build(cli.AnalyzerConfig(flags), p.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to set up analyzer: %w", err)
		}
		p.logger.Debug("analyzer ready", "analyzer", pipeline.Name())
		p.analyzer = pipeline
		p.closer = pipeline
	}

	p.accentuator = accent.New(p.analyzer, accent.WithLogger(p.logger))
	return p, nil
}

// Close releases the analyzer's resources.
func (p *Processor) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// ResolveCase turns an English case name into its Lithuanian label and
// passes anything else through unchanged.
func ResolveCase(name string) string {
	if label := accent.TranslateCaseName(name); label != accent.UnknownCase {
		return label
	}
	return name
}

// caseLabel applies the default case and ResolveCase. Names that are
// neither English nor a Lithuanian label are logged and passed on as is.
func (p *Processor) caseLabel(caseName string) string {
	if caseName == "" {
		caseName = cli.DefaultCase(p.flags)
	}
	label := ResolveCase(caseName)
	if !accent.IsCaseLabel(label) {
		p.logger.Debug("case is not a Lithuanian case label, matching it verbatim", "case", label)
	}
	return label
}

// Accentuate returns word accented for the given case name.
func (p *Processor) Accentuate(ctx context.Context, word, caseName string) (string, error) {
	return p.accentuator.GetAccentuation(ctx, word, p.caseLabel(caseName))
}

// ProcessSingleWord accentuates one word and prints "word (case): accented".
func (p *Processor) ProcessSingleWord(ctx context.Context, word, caseName string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}

	label := p.caseLabel(caseName)
	accented, err := p.accentuator.GetAccentuation(ctx, word, label)
	if err != nil {
		return fmt.Errorf("failed to accentuate '%s': %w", word, err)
	}

	fmt.Fprintf(p.out, "%s (%s): %s\n", word, label, accented)
	return nil
}

// ProcessBatch accentuates every entry of the batch file. Failures are
// reported and skipped; an error is returned afterwards if any entry hit
// an analyzer contract violation.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0
	violations := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.ProcessSingleWord(ctx, entry.Word, entry.Case); err != nil {
			p.logger.Debug("word failed", "word", entry.Word, "case", entry.Case, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			errorCount++
			if accent.IsContractViolation(err) {
				violations++
			}
			continue
		}
		processedCount++
	}

	fmt.Fprintf(p.out, "\n=== Batch Summary ===\n")
	fmt.Fprintf(p.out, "Total words: %d\n", len(entries))
	fmt.Fprintf(p.out, "Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", errorCount)
	}

	if violations > 0 {
		return fmt.Errorf("%w: %d of %d words", ErrContractViolation, violations, len(entries))
	}
	return nil
}

// RunDemo accentuates the demo word and prints only the result.
func (p *Processor) RunDemo(ctx context.Context) error {
	accented, err := p.Accentuate(ctx, DemoWord, DemoCase)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, accented)
	return nil
}
