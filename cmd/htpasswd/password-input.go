package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	goos "os"
	"strings"

	"golang.org/x/term"

	"github.com/engity-com/htpasswd/pkg/errors"
)

// readPassword reads the password either interactively from the terminal or,
// if stdin is no terminal or forceStdin is set, as one line from stdin.
func readPassword(prompt string, confirm bool, forceStdin bool) ([]byte, error) {
	fd := int(goos.Stdin.Fd())
	if forceStdin || !term.IsTerminal(fd) {
		return readPasswordLine(goos.Stdin)
	}

	first, err := promptPassword(prompt, fd)
	if err != nil {
		return nil, err
	}
	if !confirm {
		return first, nil
	}

	second, err := promptPassword("Re-type password: ", fd)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, errors.User.Newf("the provided passwords do not match")
	}

	return first, nil
}

func promptPassword(prompt string, fd int) ([]byte, error) {
	_, _ = fmt.Fprint(goos.Stderr, prompt)
	result, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(goos.Stderr)
	if err != nil {
		return nil, errors.System.Newf("cannot read password: %w", err)
	}
	return result, nil
}

func readPasswordLine(from io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(from).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.System.Newf("cannot read password: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return []byte(line), nil
}
