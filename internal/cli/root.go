// Package cli assembles the cobra command tree: the interactive picker at
// the root plus the sample and catalog subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tower-picker/internal/app"
	"github.com/atomicstack/tower-picker/internal/config"
	"github.com/atomicstack/tower-picker/internal/logging"
	"github.com/spf13/cobra"
)

// runtime is shared by every command once the persistent flags resolve.
type runtime struct {
	flags *config.Flags
	argv  []string
	cfg   config.Config
	runUI func(app.Config) error
}

// NewRootCommand builds the command tree with flag defaults taken from env.
// argv is only recorded in the startup trace.
func NewRootCommand(env map[string]string, argv []string) *cobra.Command {
	return newRoot(env, &runtime{argv: argv, runUI: app.Run})
}

func newRoot(env map[string]string, rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "tower-picker",
		Short:         "Pick random Bloons TD 6 tower teams",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runUI(rt.cfg.App)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	})
	rt.flags = config.Bind(root.PersistentFlags(), env)
	root.AddCommand(sampleCmd(rt), catalogCmd(rt))
	return root
}

func (rt *runtime) setup() error {
	rt.cfg = rt.flags.Config(rt.argv)
	if err := config.Validate(rt.cfg); err != nil {
		return err
	}
	logging.Configure(rt.cfg.Logging.FilePath)
	logging.SetTraceEnabled(rt.cfg.Logging.Trace)
	traceStartup(rt.cfg)
	return nil
}

// Execute runs the command tree against the process arguments and returns
// the exit status.
func Execute() int {
	env, err := config.Environ(os.Environ(), config.DotenvFile)
	if err != nil {
		return report(os.Stderr, err)
	}
	defer logging.Close()
	root := NewRootCommand(env, os.Args[1:])
	root.SetArgs(os.Args[1:])
	err = root.Execute()
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		logging.Error(err)
	}
	return report(os.Stderr, err)
}

// report prints err and maps it to an exit status: 2 for configuration
// problems, 1 for anything else.
func report(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalid):
		fmt.Fprintf(w, "Configuration error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
}
