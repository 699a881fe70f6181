package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"

	"tsi/interpreter-go/pkg/interpreter"
	"tsi/interpreter-go/pkg/parser"
	"tsi/interpreter-go/pkg/runtime"
)

// Options control how a Session drives the parser and interpreter.
type Options struct {
	// Debug traces every statement and the variable table at DEBUG level.
	Debug bool
	// KeepGoing collects evaluation errors and moves on to the next
	// statement. Parse errors always stop a run.
	KeepGoing bool
	// LogWriter receives debug traces; os.Stderr when nil.
	LogWriter logger.SyncWriter
}

// LogWriter adapts w for debug traces. Writers that already implement
// logger.SyncWriter are returned unchanged; a nil writer stays nil.
func LogWriter(w io.Writer) logger.SyncWriter {
	switch w := w.(type) {
	case nil:
		return nil
	case logger.SyncWriter:
		return w
	default:
		return nopSyncWriter{w}
	}
}

type nopSyncWriter struct {
	io.Writer
}

func (nopSyncWriter) Sync() error { return nil }

// Result summarises one Run.
type Result struct {
	Last       runtime.Value
	HasLast    bool
	Statements int
	Failed     int
}

// Session pairs one interpreter with a parser per source text, so bindings
// persist across calls to Run.
type Session struct {
	opts   Options
	interp *interpreter.Interpreter
	log    *logger.Logger
}

// NewSession returns a session with a fresh interpreter.
func NewSession(opts Options) *Session {
	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	return &Session{
		opts:   opts,
		interp: interpreter.New(),
		log: logger.NewFromOptions(&logger.Options{
			SyncWriter:   w,
			IncludeDebug: opts.Debug,
		}),
	}
}

// Interpreter exposes the session's interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Reset discards every binding by starting over with a new interpreter.
func (s *Session) Reset() {
	s.interp = interpreter.New()
}

// Run parses and evaluates src statement by statement until end of input.
func (s *Session) Run(src string) (*Result, error) {
	p := parser.New(src)
	result := &Result{}
	var errs *multierror.Error
	for !p.IsEOF() {
		stmt, err := p.ParseStatement()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("statement %d: parse error: %w", result.Statements+1, err))
			break
		}
		result.Statements++
		s.log.Debugf("statement %d: %s", result.Statements, stmt)

		val, err := s.interp.Eval(stmt)
		if err != nil {
			result.Failed++
			errs = multierror.Append(errs, fmt.Errorf("statement %d: %w", result.Statements, err))
			if !s.opts.KeepGoing {
				break
			}
			continue
		}
		result.Last, result.HasLast = val, true
		s.log.Debugf("variables: %s", FormatVariables(s.interp.Environment()))
	}
	return result, singleOrAggregate(errs)
}

// RunFile reads path and runs it in a new session.
func RunFile(path string, opts Options) (*Session, *Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	session := NewSession(opts)
	result, err := session.Run(string(src))
	return session, result, err
}

// FormatVariables renders bindings in sorted order as name=literal pairs.
func FormatVariables(env *runtime.Environment) string {
	keys := env.Keys()
	parts := make([]string, 0, len(keys))
	for _, name := range keys {
		val, _ := env.Lookup(name)
		parts = append(parts, name+"="+runtime.Literal(val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// singleOrAggregate unwraps a one-error aggregate so callers see the
// original message.
func singleOrAggregate(errs *multierror.Error) error {
	if errs == nil {
		return nil
	}
	if len(errs.Errors) == 1 {
		return errs.Errors[0]
	}
	return errs.ErrorOrNil()
}
