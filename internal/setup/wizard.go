package setup

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"nexusfile/internal/config"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const welcomeMessage = `
%s%s╭──────────────────────────────────────╮
│      Welcome to nexusfile! 📂        │
╰──────────────────────────────────────╯%s

nexusfile turns plain-language requests into file operations,
and always asks before moving anything.

To talk to the Gemini API it needs an API key.
Get one at: https://aistudio.google.com/apikey
`

// envKeyVars lists the environment variables checked for an existing
// key, highest priority first.
var envKeyVars = []string{"NEXUSFILE_API_KEY", "GEMINI_API_KEY"}

// detectEnvAPIKey returns the first set key variable and its value.
func detectEnvAPIKey() (string, string) {
	for _, envVar := range envKeyVars {
		if key := os.Getenv(envVar); key != "" {
			return envVar, key
		}
	}
	return "", ""
}

// RunWizard walks first-time setup: reuse an environment key when one is
// present, otherwise prompt for one, then save the config file.
func RunWizard(cfg *config.Config) error {
	fmt.Printf(welcomeMessage, colorCyan, colorBold, colorReset)

	reader := bufio.NewReader(os.Stdin)

	if envVar, key := detectEnvAPIKey(); envVar != "" {
		fmt.Printf("\n%s✓ Found %s in environment.%s\n", colorGreen, envVar, colorReset)
		fmt.Printf("%sUse it for setup? [Y/n]:%s ", colorCyan, colorReset)

		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer == "" || answer == "y" || answer == "yes" {
			return saveKey(cfg, key, envVar)
		}
	}

	fmt.Printf("\n%sEnter your Gemini API key:%s ", colorCyan, colorReset)
	key, err := readKey(reader)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	key = strings.TrimSpace(key)
	if len(key) < 10 {
		return fmt.Errorf("that does not look like a valid API key")
	}

	return saveKey(cfg, key, "")
}

// readKey reads the API key without echoing when stdin is a terminal.
func readKey(reader *bufio.Reader) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return reader.ReadString('\n')
}

func saveKey(cfg *config.Config, key, source string) error {
	cfg.API.GeminiKey = key
	if cfg.API.Backend == "" {
		cfg.API.Backend = "gemini"
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if source != "" {
		fmt.Printf("\n%s✓ Configured with %s!%s\n", colorGreen, source, colorReset)
	} else {
		fmt.Printf("\n%s✓ API key saved.%s\n", colorGreen, colorReset)
	}
	fmt.Printf("  %sConfig:%s %s\n", colorYellow, colorReset, config.GetConfigPath())
	fmt.Printf("\nTry: %snexusfile \"move all jpg files from Downloads to Pictures\"%s\n", colorBold, colorReset)
	return nil
}
