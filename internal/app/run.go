package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/gemmit/internal/ai"
	"github.com/your-org/gemmit/internal/config"
	"github.com/your-org/gemmit/internal/gemini"
	"github.com/your-org/gemmit/internal/prompt"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
)

type Config struct {
	Description string
	Style       string
	Model       string
	GeminiKey   string

	Interactive bool
}

var messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

func Run(ctx context.Context, cfg Config) error {
	if cfg.GeminiKey == "" {
		return errors.New("missing gemini key. Set GEMINI_API_KEY or run: gemmit config")
	}

	provider := gemini.New(gemini.Config{
		APIKey: cfg.GeminiKey,
		Model:  cfg.Model,
	})
	p := prompt.Build(cfg.Description, cfg.Style)

	msg, err := generate(ctx, provider, p)
	if err != nil {
		return err
	}

	if !cfg.Interactive {
		fmt.Println()
		fmt.Println(messageStyle.Render(msg))
		fmt.Println()
		return nil
	}

	return runInteractiveLoop(ctx, provider, p, msg)
}

// generate performs one provider call behind a spinner and unwraps any
// markdown fencing the model added.
func generate(ctx context.Context, provider ai.Provider, p string) (string, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Generating commit message..."
	s.Start()
	raw, err := provider.Generate(ctx, p)
	s.Stop()

	if err != nil {
		return "", err
	}

	msg, _ := prompt.StripCodeFence(raw)
	return msg, nil
}

// RunConfig launches the interactive settings editor and persists the
// result.
func RunConfig(configPath string) error {
	fileCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	newCfg, ok, err := runConfigInteractive(fileCfg)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Operation cancelled.")
		return nil
	}

	if err := config.Save(newCfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println("\nConfiguration saved.")
	return nil
}
