package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

type terminalPasswordReader struct {
	fd     int
	in     *bufio.Reader
	prompt io.Writer
}

// NewTerminalPasswordReader reads passwords from the terminal behind fd
// without echo. When fd is not a terminal (piped input) a line is read from
// in instead. Prompts go to prompt.
func NewTerminalPasswordReader(fd int, in io.Reader, prompt io.Writer) PasswordReader {
	return &terminalPasswordReader{fd: fd, in: bufio.NewReader(in), prompt: prompt}
}

func (t *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(t.prompt, prompt)

	if term.IsTerminal(t.fd) {
		raw, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.prompt)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
