package providers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/femtoclaw/femtoclaw/pkg/config"
	"github.com/femtoclaw/femtoclaw/pkg/logger"
)

// KiroProvider implements Provider by spawning the kiro-cli binary for
// each call. The invocation parameters are fixed at construction; no
// field mutates during a call, so concurrent invocations on one
// instance are safe and each spawns its own subprocess.
//
// There is no internal timeout: callers needing bounded latency wrap
// the call in a context deadline, which kills the child on expiry.
type KiroProvider struct {
	bin          string
	agent        string
	model        string
	promptViaArg bool
	builder      PromptBuilder
}

// NewKiroProvider builds a provider from resolved configuration.
// Executable discovery (explicit path, environment, PATH, default name)
// happens here once, via cfg.ResolveBin; nothing is looked up per call.
func NewKiroProvider(cfg *config.Config) *KiroProvider {
	return &KiroProvider{
		bin:          cfg.ResolveBin(),
		agent:        cfg.Provider.Agent,
		model:        cfg.Provider.Model,
		promptViaArg: cfg.Provider.PromptViaArg,
		builder: PromptBuilder{
			Budget: PromptBudget{
				MaxPromptChars:  cfg.Prompt.MaxPromptChars,
				MaxHistoryTurns: cfg.Prompt.MaxHistoryTurns,
			},
			SystemAnchor: cfg.Prompt.SystemAnchor,
		},
	}
}

var _ Provider = (*KiroProvider)(nil)

// ChatWithSystem runs a single turn with an optional system prompt.
// The system text is sent in full; the anchor reduction only applies to
// history turns.
func (p *KiroProvider) ChatWithSystem(ctx context.Context, system, message string) (string, error) {
	var sb strings.Builder
	if system != "" {
		sb.WriteString("System: ")
		sb.WriteString(system)
		sb.WriteString("\n\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(message)

	return p.invoke(ctx, sb.String())
}

// ChatWithHistory compacts history to the configured budget and runs
// one turn over it.
func (p *KiroProvider) ChatWithHistory(ctx context.Context, messages []ChatMessage) (string, error) {
	return p.invoke(ctx, p.builder.Build(messages))
}

// invoke spawns the CLI, delivers the prompt, and interprets the
// result. Stdin delivery is the default: the prompt is written to the
// child's input stream and the stream is closed to signal completion,
// sidestepping argv length limits. Output is read to completion before
// returning; streaming consumption is not supported.
func (p *KiroProvider) invoke(ctx context.Context, prompt string) (string, error) {
	args := []string{"chat", "--no-interactive"}
	if p.agent != "" {
		args = append(args, "--agent", p.agent)
	}
	if p.model != "" {
		args = append(args, "--model", p.model)
	}
	if p.promptViaArg {
		args = append(args, prompt)
	}

	cmd := exec.CommandContext(ctx, p.bin, args...)
	// On context expiry only the direct child is killed; a grandchild
	// inheriting the output pipes would otherwise hold Wait open until
	// it exits on its own. WaitDelay caps that wait.
	cmd.WaitDelay = 3 * time.Second
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "TERM=dumb")
	if !p.promptViaArg {
		cmd.Stdin = strings.NewReader(prompt)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logArgs := args
	if p.promptViaArg {
		logArgs = args[:len(args)-1] // keep the prompt out of the log line
	}
	logger.DebugCF("providers", "invoking kiro-cli", map[string]any{
		"bin":          p.bin,
		"args":         strings.Join(logArgs, " "),
		"prompt_bytes": len(prompt),
	})

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Bin:    p.bin,
				Status: exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return "", &SpawnError{Bin: p.bin, Err: err}
	}

	output := SanitizeOutput(stdout.String())
	if IsContextOverflow(output) {
		return "", fmt.Errorf("%s: %w", p.bin, ErrContextOverflow)
	}
	return output, nil
}
