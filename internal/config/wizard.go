package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to sopmaster! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)
	cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (SQLite database location)",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Verification-code delivery.
	mailPrompt := promptui.Select{
		Label: "How should verification codes reach users?",
		Items: []string{
			"on-screen — show the code in the browser (no setup)",
			"email    — deliver through an EmailJS account",
		},
	}
	mailIdx, _, err := mailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mail mode: %w", err)
	}

	if mailIdx == 1 {
		cfg.Mail.Enabled = true
		for _, p := range []struct {
			label string
			dst   *string
		}{
			{"EmailJS service ID", &cfg.Mail.ServiceID},
			{"EmailJS template ID", &cfg.Mail.TemplateID},
			{"EmailJS public key", &cfg.Mail.PublicKey},
		} {
			prompt := promptui.Prompt{Label: p.label}
			v, err := prompt.Run()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.label, err)
			}
			*p.dst = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	return cfg, nil
}
