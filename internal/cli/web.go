package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RisingFlamesUK/kickstart-node-app/internal/config"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/core/project"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/options"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/plan"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/report"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/strategy"
	"github.com/RisingFlamesUK/kickstart-node-app/internal/ui"
)

func newWebCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web <project-name>",
		Short: "Generate an Express web application",
		Long: `Generate an Express + EJS web application in ./<project-name>.

Feature flags that are not given are asked for interactively, unless
--silent is set or a preset file is used.

Examples:
  kickstart-node web my-app
  kickstart-node web my-app --pg --session --passport local,google
  kickstart-node web my-app --preset answers.json --dry-run`,
		Args:    cobra.ExactArgs(1),
		PreRunE: validateWebFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeb(cmd, args, deps)
		},
	}

	f := cmd.Flags()
	f.Bool("pg", false, "Include PostgreSQL")
	f.Bool("session", false, "Enable session management (implies --pg)")
	f.Bool("axios", false, "Include Axios")
	f.String("passport", "", "Comma-separated authentication strategies ("+strings.Join(strategy.IDs(), ", ")+")")
	f.String("port", options.DefaultPort, "Port the generated server listens on")
	f.Bool("dry-run", false, "Show what would be generated without writing anything")
	f.Bool("verbose", false, "Print the resolved options and every step")
	f.Bool("silent", false, "Never prompt; use flags, preset and defaults")
	f.String("preset", "", "Preset answers file (JSON or YAML)")

	return cmd
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateWebFlags validates flag values before execution.
func validateWebFlags(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("project name must not be empty")
	}

	port := getStringFlag(cmd, "port")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid --port value %q: must be a number between 1 and 65535", port)
	}

	if cmd.Flags().Changed("preset") && strings.TrimSpace(getStringFlag(cmd, "preset")) == "" {
		return fmt.Errorf("--preset requires a file path")
	}
	return nil
}

// flagLayer turns the flags the user actually set into the highest
// precedence options layer.
func flagLayer(cmd *cobra.Command, projectName string) options.Partial {
	layer := options.Partial{ProjectName: options.Ptr(projectName)}
	changed := cmd.Flags().Changed

	if changed("pg") {
		layer.IncludeDatabase = options.Ptr(getBoolFlag(cmd, "pg"))
	}
	if changed("session") {
		layer.IncludeSessions = options.Ptr(getBoolFlag(cmd, "session"))
	}
	if changed("axios") {
		layer.IncludeHTTPClient = options.Ptr(getBoolFlag(cmd, "axios"))
	}
	if changed("passport") {
		layer.Strategies = options.SelectStrategies(getStringFlag(cmd, "passport"), nil)
	}
	if changed("port") {
		layer.Port = options.Ptr(getStringFlag(cmd, "port"))
	}
	if changed("dry-run") {
		layer.DryRun = options.Ptr(getBoolFlag(cmd, "dry-run"))
	}
	if changed("verbose") {
		layer.Verbose = options.Ptr(getBoolFlag(cmd, "verbose"))
	}
	if changed("silent") {
		layer.NonInteractive = options.Ptr(getBoolFlag(cmd, "silent"))
	}
	return layer
}

// runWeb normalizes the options, plans and executes the generation, then
// writes and prints NEXT_STEPS.md.
func runWeb(cmd *cobra.Command, args []string, deps *Dependencies) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	verbose := getBoolFlag(cmd, "verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	var preset options.Partial
	if path := getStringFlag(cmd, "preset"); path != "" {
		p, err := config.NewLoader(logger).Load(path)
		if err != nil {
			return err
		}
		preset = p
	}

	normalizer := options.NewNormalizer(deps.NewPrompter(), logger)
	res, err := normalizer.Normalize(ctx, preset, flagLayer(cmd, args[0]))
	if err != nil {
		return err
	}
	cfg := res.Config
	if cfg.Verbose && !verbose {
		// Verbose came from the preset; the normalizer logged at info level.
		logger = newLogger(cmd.ErrOrStderr(), true)
		logger.Debug("options normalized", cfg.LogArgs()...)
	}

	p := plan.Build(cfg)
	for _, w := range p.Warnings {
		logger.Warn(w)
	}

	base, err := deps.WorkDir()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	root, err := project.ResolveTarget(base, cfg.ProjectName)
	if err != nil {
		return err
	}

	mode := project.ModeFor(cfg.DryRun)
	var installOutput io.Writer
	if cfg.Verbose {
		installOutput = cmd.ErrOrStderr()
	}

	logger.Debug("plan built",
		"actions", len(p.Actions),
		"copies", p.Count(plan.StaticCopy),
		"renders", p.Count(plan.Render),
		"dependencies", len(p.Dependencies))

	var execOpts []project.ExecutorOption
	var steps string
	if mode == project.ModeLive {
		// NEXT_STEPS.md goes into the initial commit.
		steps = report.BuildNextSteps(cfg.ProjectName, cfg, cfg.AuthStrategies, cfg.ProjectSlug)
		execOpts = append(execOpts, project.WithPreCommit(func(root string) error {
			return report.Write(root, steps)
		}))
	}
	if mode == project.ModeLive && !cfg.Verbose {
		bar := ui.NewProgress(deps.Theme, deps.Headless, out).Start("Generating "+cfg.ProjectName, len(p.Actions))
		defer bar.Done()
		execOpts = append(execOpts, project.WithProgress(bar))
	}

	executor := project.NewExecutor(deps.Templates,
		deps.NewPackageManager(logger, installOutput),
		deps.NewVCS(logger),
		logger,
		execOpts...)
	if _, err := executor.Execute(ctx, root, p, mode); err != nil {
		return err
	}

	if mode == project.ModeLive {
		rendered, err := report.Render(steps, report.DefaultWidth, deps.Headless.IsHeadless() || deps.Theme.NoColor)
		if err != nil {
			logger.Warn("could not render next steps", "error", err)
		} else {
			_, _ = fmt.Fprint(out, rendered)
		}
	}

	successCard(out, deps.Theme, cfg.ProjectName, mode == project.ModeDryRun)
	return nil
}
