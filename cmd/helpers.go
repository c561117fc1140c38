package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const requestTimeout = 30 * time.Second

// requestContext returns the context used for one hub API call.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// promptConfirm asks the user for confirmation and returns true if they confirm.
// prompt should include the question (e.g., "Delete this key? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// promptLine reads one line of input with the given prompt.
func promptLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	reader := bufio.NewReader(os.Stdin)

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// promptSecret reads a value without echoing it. Falls back to a plain
// read when stdin is not a terminal (piped input, CI).
func promptSecret(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine("")
	}

	value, err := term.ReadPassword(fd)

	fmt.Println()

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(value)), nil
}

// maskSecret hides all but the first characters of a credential.
func maskSecret(s string) string {
	const visible = 8

	if len(s) <= visible {
		return strings.Repeat("•", len(s))
	}

	return s[:visible] + strings.Repeat("•", 12)
}

// printEmptyResult prints a "no results" message with a create hint.
func printEmptyResult(resourceType, createCmd string) {
	_, _ = fmt.Fprintf(os.Stdout, "No %s configured.\n", resourceType)
	_, _ = fmt.Fprintf(os.Stdout, "Create one with: %s\n", createCmd)
}
