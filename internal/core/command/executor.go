package command

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go-toolfx/internal/core/config"
	"go-toolfx/internal/core/utils"
)

// Outcome tells a caller whether the pre-flight checks left anything to do.
type Outcome int

const (
	// OutcomeContinue means the tool should run.
	OutcomeContinue Outcome = iota
	// OutcomeHandled means help or version output was shown.
	OutcomeHandled
	// OutcomeFailed means an error was returned alongside the outcome.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeHandled:
		return "handled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Tool runs in-process once its command has been parsed.
type Tool interface {
	Execute(cmd Command) error
}

// ToolFunc adapts a function to Tool.
type ToolFunc func(cmd Command) error

func (f ToolFunc) Execute(cmd Command) error {
	return f(cmd)
}

// MetadataLoader supplies tool metadata for version output.
type MetadataLoader func(logger *utils.Logger) (config.ToolMetadata, error)

// FileMetadata loads metadata from a properties file on disk.
func FileMetadata(path string) MetadataLoader {
	return func(logger *utils.Logger) (config.ToolMetadata, error) {
		return config.LoadToolMetadata(path, logger)
	}
}

// EmbeddedMetadata loads metadata from properties content compiled into the
// binary.
func EmbeddedMetadata(content []byte) MetadataLoader {
	return func(logger *utils.Logger) (config.ToolMetadata, error) {
		return config.ReadToolMetadata(bytes.NewReader(content), logger)
	}
}

// ToolExecutor parses arguments, handles help and version, and runs tools.
type ToolExecutor struct {
	logger   *utils.Logger
	out      io.Writer
	errOut   io.Writer
	metadata MetadataLoader
}

type Option func(*ToolExecutor)

func WithLogger(logger *utils.Logger) Option {
	return func(e *ToolExecutor) {
		e.logger = logger
	}
}

// WithOutput redirects usage/version output and error reports.
func WithOutput(out, errOut io.Writer) Option {
	return func(e *ToolExecutor) {
		e.out = out
		e.errOut = errOut
	}
}

func WithMetadata(loader MetadataLoader) Option {
	return func(e *ToolExecutor) {
		e.metadata = loader
	}
}

func NewToolExecutor(opts ...Option) *ToolExecutor {
	e := &ToolExecutor{
		logger:   utils.NewLogger("info", "text"),
		out:      os.Stdout,
		errOut:   os.Stderr,
		metadata: FileMetadata(config.ToolPropertiesPath),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *ToolExecutor) Logger() *utils.Logger {
	return e.logger
}

// ExtractToolMetadata loads metadata through the configured loader.
func (e *ToolExecutor) ExtractToolMetadata() (config.ToolMetadata, error) {
	if e.metadata == nil {
		return config.ReadToolMetadata(bytes.NewReader(nil), e.logger)
	}
	return e.metadata(e.logger)
}

// Preflight validates inputs, parses args, extracts metadata and handles the
// common flags. A non-nil error always comes with OutcomeFailed.
func (e *ToolExecutor) Preflight(factory Factory, args []string) (Command, Outcome, error) {
	if factory == nil {
		return nil, OutcomeFailed, utils.NewPreconditionError("command factory")
	}
	if args == nil {
		return nil, OutcomeFailed, utils.NewPreconditionError("args")
	}

	cmd, cc, err := parse(factory, args)
	if err != nil {
		if cc != nil && utils.IsParseError(err) {
			fmt.Fprintln(e.errOut, err)
			fmt.Fprint(e.errOut, renderUsage(cc))
			e.logger.WithError(err).Debug("Argument parsing failed", "tool", cc.Name())
			if te, ok := err.(*utils.ToolError); ok {
				te.MarkReported()
			}
		}
		return nil, OutcomeFailed, err
	}

	meta, err := e.ExtractToolMetadata()
	if err != nil {
		return nil, OutcomeFailed, err
	}

	return cmd, e.HandleCommonParameters(meta, cmd), nil
}

// HandleCommonParameters prints help and/or version output when requested.
func (e *ToolExecutor) HandleCommonParameters(meta config.ToolMetadata, cmd Command) Outcome {
	outcome := OutcomeContinue

	if HelpRequested(cmd) {
		e.logger.Debug("Help requested", "tool", meta.Name)
		fmt.Fprint(e.out, Usage(cmd))
		outcome = OutcomeHandled
	}

	if VersionRequested(cmd) {
		e.logger.Debug("Version requested", "tool", meta.Name, "version", meta.Version)
		fmt.Fprintf(e.out, "%s %s\n", meta.Name, meta.Version)
		fmt.Fprintf(e.out, "Source: %s\n", meta.RepositoryURL)
		outcome = OutcomeHandled
	}

	return outcome
}

// Invoke runs tool in-process after the pre-flight checks.
func (e *ToolExecutor) Invoke(tool Tool, factory Factory, args []string) error {
	if tool == nil {
		return utils.NewPreconditionError("tool")
	}

	cmd, outcome, err := e.Preflight(factory, args)
	if outcome != OutcomeContinue {
		return err
	}

	name := cmd.Spec().Name
	e.logger.Debug("Executing tool", "tool", name)
	if err := tool.Execute(cmd); err != nil {
		return utils.NewApplicationError("tool "+name+" failed", err)
	}
	return nil
}
