package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/byxorna/recipebox/pkg/app"
	"github.com/byxorna/recipebox/pkg/config"
	"github.com/byxorna/recipebox/pkg/db/mem"
	"github.com/byxorna/recipebox/pkg/runtime"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flags = struct {
		ConfigFile string
		Debug      bool
		NoWatch    bool
	}{}

	root = &cobra.Command{
		Use:   "recipebox",
		Short: "Recipebox is a terminal recipe box",
		Long: `Recipebox keeps a list of recipes for the length of a session.
Add recipes on one tab, browse, edit and delete them on the other.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, logPath, err := runtime.SetupLogging(flags.Debug)
			if err != nil {
				return err
			}
			defer logs.Close()
			if logPath != "" {
				fmt.Fprintf(os.Stderr, "Logging to %s\n", logPath)
			}

			cfg, err := config.Load(flags.ConfigFile)
			if err != nil {
				return err
			}

			store, err := mem.New(mem.WithRecipes(cfg.StarterRecipes...))
			if err != nil {
				return err
			}

			m := app.New(cfg, store)
			p := tea.NewProgram(m, tea.WithAltScreen())

			if !flags.NoWatch {
				w, err := config.Watch(flags.ConfigFile, func(c *config.Config, err error) {
					p.Send(app.ConfigReloadedMsg{Config: c, Err: err})
				})
				if err != nil {
					// not fatal, the config just won't live reload
					log.Printf("unable to watch %s: %v", flags.ConfigFile, err)
				} else {
					defer w.Close()
				}
			}

			_, err = p.Run()
			return err
		},
	}
)

func init() {
	root.Version = app.Version
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", config.DefaultPath, "configuration file")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "write a debug log to the runtime directory")
	root.Flags().BoolVar(&flags.NoWatch, "no-watch", false, "do not reload the configuration file when it changes")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
