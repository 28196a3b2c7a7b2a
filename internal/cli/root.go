package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RisingFlamesUK/kickstart-node-app/pkg/version"
)

// NewRootCmd builds the kickstart-node command tree around deps.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:   "kickstart-node",
		Short: "Scaffold Node.js projects",
		Long: `kickstart-node generates ready-to-run Node.js projects.

The web generator creates an Express + EJS application with optional
PostgreSQL, sessions, Axios and Passport.js authentication.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("kickstart-node %s\n", version.Full()))

	root.AddCommand(newWebCmd(deps))
	return root
}

// Execute wires the production dependencies and runs the command line.
// Errors are printed to stderr before being returned.
func Execute(ctx context.Context) error {
	deps, err := NewDependencies(os.Getwd)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	root := NewRootCmd(deps)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errorLine(deps.Theme, err))
		return err
	}
	return nil
}
