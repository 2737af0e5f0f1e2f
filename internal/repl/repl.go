package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/sajjad-MoBe/LogKVStore/internal/storage"
)

const (
	cmdSet  = "SET"
	cmdGet  = "GET"
	cmdExit = "EXIT"

	prompt = "db> "
)

// Repl is the line-oriented command session over an Engine. It reads
// commands from In, writes query results to Out and status/diagnostic text
// to Diag. All streams are injectable so sessions can run against piped
// input and be scripted in tests.
type Repl struct {
	engine *storage.Engine

	In   io.Reader
	Out  io.Writer
	Diag io.Writer

	// Interactive enables the prompt, the startup banner, and (OK)
	// acknowledgements. Piped sessions run silent.
	Interactive bool
}

// New creates a session over engine with the given streams.
func New(engine *storage.Engine, in io.Reader, out, diag io.Writer, interactive bool) *Repl {
	return &Repl{
		engine:      engine,
		In:          in,
		Out:         out,
		Diag:        diag,
		Interactive: interactive,
	}
}

// StdinIsTerminal reports whether stdin is attached to a terminal, used by
// the caller to pick interactive mode.
func StdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Run processes commands until EXIT or end of input.
//
// GET <key> prints the stored value, or an empty line when the key is
// absent. SET <key> <value...> stores the rest of the line as the value.
// Blank lines and unrecognized commands are ignored. Errors from the engine
// are reported on Diag and the session continues.
func (r *Repl) Run() error {
	if r.Interactive {
		fmt.Fprintln(r.Diag, "--- Simple Key-Value Store ---")
		fmt.Fprintln(r.Diag, "Commands: SET <key> <value>, GET <key>, EXIT")
	}

	scanner := bufio.NewScanner(r.In)
	for {
		if r.Interactive {
			fmt.Fprint(r.Out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == cmdExit {
			break
		}

		r.dispatch(line)
	}
	return scanner.Err()
}

func (r *Repl) dispatch(line string) {
	op, rest := splitToken(line)

	switch op {
	case cmdGet:
		key, extra := splitToken(rest)
		if key == "" || extra != "" {
			return
		}
		if value, ok := r.engine.Get(key); ok {
			fmt.Fprintln(r.Out, value)
		} else {
			fmt.Fprintln(r.Out, "")
		}

	case cmdSet:
		key, value := splitToken(rest)
		if key == "" || value == "" {
			return
		}
		if err := r.engine.Set(key, value); err != nil {
			fmt.Fprintf(r.Diag, "Error writing to data file: %v\n", err)
			return
		}
		if r.Interactive {
			fmt.Fprintln(r.Diag, "(OK)")
		}
	}
}

func splitToken(s string) (token, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
