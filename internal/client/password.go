// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalPasswordReader struct {
	in  *os.File
	out io.Writer
}

// NewTerminalPasswordReader reads passwords from in. When in is a terminal
// echo is disabled, otherwise a single line is read, which lets scripts pipe
// the password in.
func NewTerminalPasswordReader(in *os.File, out io.Writer) PasswordReader {
	return &terminalPasswordReader{in: in, out: out}
}

func (t *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	fd := int(t.in.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
