package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/byxorna/recipebox/pkg/config"
	"github.com/byxorna/recipebox/pkg/types/v1"
	"github.com/charmbracelet/huh"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.ConfigFile)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Interactively write a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(flags.ConfigFile)
			if err != nil {
				return err
			}

			a := defaultAnswers()
			_, statErr := os.Stat(path)
			exists := statErr == nil

			err = initForm(&a, path, exists).Run()
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Configuration unchanged.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("form error: %w", err)
			}
			if !a.write {
				fmt.Fprintln(cmd.ErrOrStderr(), "Configuration unchanged.")
				return nil
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}
			if err := writeConfig(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configInitCmd)
	root.AddCommand(configCmd)
}

// initAnswers holds what the init form collects, as the form sees it
type initAnswers struct {
	theme        string
	emoji        bool
	emojiCount   string
	title        string
	ingredients  string
	instructions string
	write        bool
}

func defaultAnswers() initAnswers {
	return initAnswers{
		theme:      string(config.Default.Theme),
		emoji:      config.Default.Emoji.Enabled,
		emojiCount: strconv.Itoa(config.Default.Emoji.Count),
	}
}

func validEmojiCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 32 {
		return fmt.Errorf("enter a number from 0 to 32")
	}
	return nil
}

// config turns the answers into a validated config. A starter recipe is only
// added when a title was given.
func (a initAnswers) config() (*config.Config, error) {
	c := config.Default
	c.Theme = config.Theme(a.theme)
	c.Emoji.Enabled = a.emoji
	if err := validEmojiCount(a.emojiCount); err != nil {
		return nil, err
	}
	c.Emoji.Count, _ = strconv.Atoi(strings.TrimSpace(a.emojiCount))

	d := v1.Draft{
		Title:        a.title,
		Ingredients:  a.ingredients,
		Instructions: a.instructions,
	}
	if strings.TrimSpace(d.Title) != "" {
		c.StarterRecipes = []v1.Draft{d}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func initForm(a *initAnswers, path string, exists bool) *huh.Form {
	question := fmt.Sprintf("Write %s?", path)
	if exists {
		question = fmt.Sprintf("Overwrite %s?", path)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Colors follow the terminal background with auto").
				Options(
					huh.NewOption("Auto", string(config.ThemeAuto)),
					huh.NewOption("Dark", string(config.ThemeDark)),
					huh.NewOption("Light", string(config.ThemeLight)),
				).
				Value(&a.theme),

			huh.NewConfirm().
				Title("Floating food emoji?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.emoji),

			huh.NewInput().
				Title("How many emoji").
				Value(&a.emojiCount).
				Validate(validEmojiCount),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Starter recipe").
				Description("Loaded every time recipebox starts (optional)").
				Placeholder("e.g., Pancakes").
				Value(&a.title),

			huh.NewText().
				Title("Ingredients").
				Placeholder("flour, milk, eggs").
				Value(&a.ingredients),

			huh.NewText().
				Title("Instructions").
				Value(&a.instructions),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Write").
				Negative("Cancel").
				Value(&a.write),
		),
	)
}

func writeConfig(path string, c *config.Config) error {
	out, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0600)
}
