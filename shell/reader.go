package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader yields one input line per call, showing prompt first. It returns
// io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// scanReader reads lines from any io.Reader and writes the prompt to out.
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanReader returns a LineReader for piped or scripted input.
func NewScanReader(in io.Reader, out io.Writer) LineReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// terminalReader adds line editing and history on an interactive terminal.
type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// Ctrl-C abandons the current line only.
		return "", nil
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

// NewStdioReader picks a terminalReader when stdin is a terminal and a
// scanReader otherwise. The returned closer must be closed on exit.
func NewStdioReader() (LineReader, io.Closer, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewScanReader(os.Stdin, os.Stdout), io.NopCloser(nil), nil
	}
	rl, err := readline.New("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	r := &terminalReader{rl: rl}
	return r, r, nil
}
