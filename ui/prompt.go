package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfirmPrompt asks the user for confirmation.
// Returns true for "y" or "yes", false otherwise.
func ConfirmPrompt(prompt string, defaultYes bool) bool {
	return ConfirmPromptWithReader(os.Stdin, os.Stdout, prompt, defaultYes)
}

// ConfirmPromptWithReader asks for confirmation with custom reader/writer (for testing).
func ConfirmPromptWithReader(r io.Reader, w io.Writer, prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprintf(w, "%s %s ", prompt, hint)

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes
	}

	return input == "y" || input == "yes"
}
