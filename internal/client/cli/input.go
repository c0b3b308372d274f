package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when a password is requested but stdin is not
// a terminal, for example when commands are piped in.
var ErrNoTerminal = errors.New("password entry needs an interactive terminal")

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText shows prompt and returns one trimmed line from reader. A
// final line without a newline still counts.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the controlling terminal with echo off.
// Login, register, password change and delete confirmation all go through
// it, so a piped stdin fails fast with ErrNoTerminal instead of hanging on
// a read that would echo the secret. Callers wipe the result.
func GetPassword(w io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return nil, ErrNoTerminal
	}
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// GetMultiline collects lines until an empty one and joins them with '\n'.
// Challenge descriptions and proof notes are entered this way.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(b.String()), nil
}
