package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/your-org/gemmit/internal/ai"
	"github.com/your-org/gemmit/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Action enum for confirmation
type Action int

const (
	ActionAccept Action = iota
	ActionRegenerate
	ActionEdit
	ActionCancel
)

func runInteractiveLoop(ctx context.Context, provider ai.Provider, p, msg string) error {
	for {
		action, err := confirmMessage(msg)
		if err != nil {
			return err
		}

		switch action {
		case ActionAccept:
			fmt.Println()
			fmt.Println(messageStyle.Render(msg))
			fmt.Println()
			return nil

		case ActionEdit:
			newMsg, err := editMessage(msg)
			if err != nil {
				return err
			}
			msg = newMsg

		case ActionRegenerate:
			// Fresh independent call, same prompt. No conversation state
			// is carried between attempts.
			msg, err = generate(ctx, provider, p)
			if err != nil {
				return err
			}

		case ActionCancel:
			fmt.Println("Cancelled.")
			return nil
		}
	}
}

func confirmMessage(msg string) (Action, error) {
	fmt.Println()
	fmt.Println(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")).
		Render("Generated Commit Message:"))

	fmt.Println(lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		MarginBottom(1).
		Render(strings.TrimSpace(msg)))

	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Accept", "accept"),
					huh.NewOption("Regenerate", "regenerate"),
					huh.NewOption("Edit", "edit"),
					huh.NewOption("Cancel", "cancel"),
				).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return ActionCancel, err
	}

	switch selected {
	case "accept":
		return ActionAccept, nil
	case "edit":
		return ActionEdit, nil
	case "regenerate":
		return ActionRegenerate, nil
	default:
		return ActionCancel, nil
	}
}

func editMessage(initialMsg string) (string, error) {
	content := initialMsg

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Edit Commit Message").
				Description("Modify the message below").
				Value(&content),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return content, nil
}

// runConfigInteractive launches a TUI form to edit the saved settings.
func runConfigInteractive(cfg config.FileConfig) (config.FileConfig, bool, error) {
	geminiKey := cfg.GeminiKey
	model := cfg.Model
	style := cfg.Style

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Gemmit Configuration").
				Description("Update your global settings in ~/.gemmit.json"),

			huh.NewInput().
				Title("Gemini API Key").
				Description("Key for the Gemini API").
				Value(&geminiKey).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Title("Model").
				Description("Gemini model name").
				Suggestions([]string{"gemini-2.5-flash", "gemini-2.5-pro"}).
				Value(&model),

			huh.NewInput().
				Title("Style").
				Description("Default commit message style").
				Placeholder("conventional commit").
				Value(&style),
		),
	)

	if err := form.Run(); err != nil {
		return cfg, false, err
	}

	cfg.GeminiKey = geminiKey
	cfg.Model = model
	cfg.Style = style
	return cfg, true, nil
}
