package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"codeberg.org/snonux/kirtis/internal/accent"
)

// phonologyScript runs phonology_engine on argv[1] and prints the stress
// options of the first word of the first sentence as JSON.
const phonologyScript = `import json, sys
from phonology_engine import PhonologyEngine
result = next(PhonologyEngine().process(sys.argv[1]))
options = result[0][0]["stress_options"]["decoded_options"]
json.dump(options, sys.stdout, ensure_ascii=False, default=str)
`

// PhonologyEngine runs the Python phonology_engine package in a subprocess.
type PhonologyEngine struct {
	pythonBin string
	timeout   time.Duration
}

// NewPhonologyEngine creates a subprocess analyzer using the given Python
// interpreter. A zero timeout leaves the call bounded only by the context.
func NewPhonologyEngine(pythonBin string, timeout time.Duration) *PhonologyEngine {
	if pythonBin == "" {
		pythonBin = "python3"
	}
	return &PhonologyEngine{pythonBin: pythonBin, timeout: timeout}
}

// Analyze returns the stress options phonology_engine computes for word.
func (p *PhonologyEngine) Analyze(ctx context.Context, word string) ([]accent.StressOption, error) {
	if strings.TrimSpace(word) == "" {
		return nil, fmt.Errorf("word cannot be empty")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, p.pythonBin, "-c", phonologyScript, word)
	cmd.Env = append(os.Environ(), "PYTHONIOENCODING=utf-8")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("phonology_engine: %w", ctxErr)
		}
		return nil, fmt.Errorf("phonology_engine failed: %w\nOutput: %s", err, strings.TrimSpace(stderr.String()))
	}

	options, err := DecodeOptions(bytes.TrimSpace(stdout.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("phonology_engine output for %q: %w", word, err)
	}
	return options, nil
}

// Name returns the provider name
func (p *PhonologyEngine) Name() string {
	return "phonology_engine"
}

// IsAvailable checks that the interpreter can import phonology_engine.
func (p *PhonologyEngine) IsAvailable() error {
	cmd := exec.Command(p.pythonBin, "-c", "import phonology_engine")
	output, err := cmd.CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return fmt.Errorf("%s is not installed or not in PATH: %w", p.pythonBin, err)
		}
		return fmt.Errorf("phonology_engine is not importable: %w\nOutput: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
