package main

import (
	"context"
	"fmt"
	"os"

	"github.com/your-org/gemmit/internal/app"
	"github.com/your-org/gemmit/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

func main() {
	config.LoadDotenv()

	var (
		style       string
		model       string
		interactive bool
		configPath  string
	)

	root := &cobra.Command{
		Use:     "gemmit <description>",
		Short:   "Generate Git commit messages with the Gemini API",
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			return app.Run(cmd.Context(), app.Config{
				Description: args[0],
				Style:       config.ResolveString(style, "", fileCfg.Style, "conventional commit"),
				Model:       config.ResolveString(model, os.Getenv("GEMMIT_MODEL"), fileCfg.Model, ""),
				GeminiKey:   config.ResolveString("", os.Getenv("GEMINI_API_KEY"), fileCfg.GeminiKey, ""),
				Interactive: interactive,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&style, "style", "s", "", `commit message style (default "conventional commit")`)
	root.Flags().StringVar(&model, "model", "", "gemini model name")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "review the message before accepting it")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.gemmit.json)")

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Interactively edit and save gemmit settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunConfig(configPath)
		},
	})

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
