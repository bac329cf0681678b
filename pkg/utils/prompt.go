package utils

import (
	"os"
	"strings"
)

const DefaultSystemPrompt = "You are a travel assistant."

// LoadPromptFromFile returns the file's contents without surrounding whitespace.
func LoadPromptFromFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}
