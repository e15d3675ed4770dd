package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"easeed/internal/bootstrap"
	"easeed/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	backendURL string
	theme      string
	timeout    time.Duration
}

func (g globalFlags) overrides() config.Overrides {
	return config.Overrides{
		ConfigPath: g.configPath,
		BackendURL: g.backendURL,
		Theme:      g.theme,
		Timeout:    g.timeout,
	}
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "easeed",
		Short:         "Turn learning material into lessons, quizzes and notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.backendURL, "backend-url", "", "backend base URL")
	pf.StringVar(&flags.theme, "theme", "", "colour theme: dark|light")
	pf.DurationVar(&flags.timeout, "timeout", 0, "request timeout (default 30s)")

	root.AddCommand(newTUICmd(&flags))
	root.AddCommand(newSubmitCmd(&flags))
	root.AddCommand(newConfigCmd(&flags))
	return root
}

func loadApp(flags globalFlags, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load(flags.overrides())
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.Options{Verbose: verbose})
}

func runTUI(flags globalFlags) error {
	app, err := loadApp(flags, false)
	if err != nil {
		return err
	}
	defer app.Close()
	return bootstrap.RunTUI(app)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal client",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*flags)
		},
	}
}

func newSubmitCmd(flags *globalFlags) *cobra.Command {
	var kind, goal, text, url, file string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send one submission and print the result",
		Example: `  easeed submit --goal learn --text "Photosynthesis"
  easeed submit --goal quiz --file chapter3.pdf
  easeed submit --goal notes --url https://www.youtube.com/watch?v=abc
  cat notes.txt | easeed submit --goal learn --text -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if text == "-" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(raw)
			}
			app, err := loadApp(*flags, verbose)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.SubmissionCLI.Submit(context.Background(), kind, goal, text, url, file)
			if err != nil {
				return err
			}
			if !out.Success {
				return errors.New(out.Display)
			}
			w := cmd.OutOrStdout()
			_, _ = io.WriteString(w, out.Text)
			if !strings.HasSuffix(out.Text, "\n") {
				_, _ = io.WriteString(w, "\n")
			}
			if verbose {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s in %s\n", out.ID, out.Endpoint, out.Elapsed.Round(time.Millisecond))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&goal, "goal", "", "goal: learn|quiz|notes")
	f.StringVar(&kind, "kind", "", "input kind: text|pdf|image|youtube (inferred when empty)")
	f.StringVar(&text, "text", "", "text or topic to submit; - reads stdin")
	f.StringVar(&url, "url", "", "YouTube link to submit")
	f.StringVar(&file, "file", "", "PDF or image file to submit")
	f.BoolVarP(&verbose, "verbose", "v", false, "log warnings and timing to stderr")
	cmd.MarkFlagsOneRequired("text", "url", "file")
	cmd.MarkFlagsMutuallyExclusive("text", "url", "file")
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.overrides())
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, _ = io.WriteString(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
