package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/edwingeng/deque"
	"github.com/fatih/color"

	"tsi/interpreter-go/pkg/runtime"
)

var (
	valueColor = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
	metaColor  = color.New(color.FgCyan)
)

// REPL reads one line at a time and evaluates it in a persistent session.
type REPL struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Config *Config

	session *Session
	history deque.Deque
}

// NewREPL wires a REPL to the given streams.
func NewREPL(in io.Reader, out, errOut io.Writer, cfg *Config) *REPL {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts := cfg.Options()
	opts.LogWriter = LogWriter(errOut)
	return &REPL{
		In:      in,
		Out:     out,
		Err:     errOut,
		Config:  cfg,
		session: NewSession(opts),
		history: deque.NewDeque(),
	}
}

// Session exposes the REPL's session.
func (r *REPL) Session() *Session {
	return r.session
}

// Run loops until end of input or a quit command.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, r.Config.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := r.runCommand(line); quit {
				return nil
			}
			continue
		}
		r.remember(line)
		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	result, err := r.session.Run(line)
	if err != nil {
		errorColor.Fprintf(r.Err, "error: %v\n", err)
		return
	}
	if result.HasLast {
		valueColor.Fprintln(r.Out, runtime.Format(result.Last))
	}
}

func (r *REPL) runCommand(line string) bool {
	switch strings.Fields(line)[0] {
	case ":quit", ":exit", ":q":
		return true
	case ":vars":
		env := r.session.Interpreter().Environment()
		for _, name := range env.Keys() {
			val, _ := env.Lookup(name)
			metaColor.Fprintf(r.Out, "%s = %s\n", name, runtime.Literal(val))
		}
	case ":history":
		for i, line := range r.History() {
			metaColor.Fprintf(r.Out, "%3d  %s\n", i+1, line)
		}
	case ":reset":
		r.session.Reset()
		metaColor.Fprintln(r.Out, "environment cleared")
	case ":help":
		fmt.Fprintln(r.Out, "commands: :vars :history :reset :help :quit")
	default:
		errorColor.Fprintf(r.Err, "unknown command %s (try :help)\n", line)
	}
	return false
}

func (r *REPL) remember(line string) {
	if r.Config.HistorySize <= 0 {
		return
	}
	r.history.PushBack(line)
	for r.history.Len() > r.Config.HistorySize {
		r.history.PopFront()
	}
}

// History returns the remembered input lines, oldest first.
func (r *REPL) History() []string {
	n := r.history.Len()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line := r.history.Front()
		r.history.PopFront()
		out = append(out, line.(string))
		r.history.PushBack(line)
	}
	return out
}
