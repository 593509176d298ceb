package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fastgen/fastgen/internal/builder"
	"github.com/fastgen/fastgen/pkg/cli/interactive"
	"github.com/fastgen/fastgen/pkg/config"
	"github.com/fastgen/fastgen/pkg/menus"
	"github.com/fastgen/fastgen/pkg/wizard"
)

const projectNamePattern = `^[a-zA-Z][a-zA-Z0-9_]*$`

func newNewCmd() *cobra.Command {
	menuSet := menus.All()
	fb := builder.NewFlagBuilder(menuSet)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new FastAPI project",
		Long: `Walks the configuration wizard and writes the resulting project
manifest. Any option supplied as a flag is not asked again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, fb, menuSet)
		},
	}

	cmd.Flags().StringP("name", "n", "", "Project name")
	cmd.Flags().StringP("output", "o", ".", "Directory to write the project into")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing output")
	fb.AddMenuFlags(cmd)

	return cmd
}

func runNew(cmd *cobra.Command, fb *builder.FlagBuilder, menuSet []wizard.Menu) error {
	noInput, _ := cmd.Flags().GetBool("no-input")

	ctx := wizard.NewContext()

	// Saved defaults seed first, flags override them.
	defaults, err := config.NewLoader("fastgen").Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load user defaults: %v\n", err)
	} else if err := builder.SeedValues(menuSet, defaults, ctx); err != nil {
		return fmt.Errorf("failed to apply user defaults: %w", err)
	}
	if err := fb.SeedContext(cmd, ctx); err != nil {
		return err
	}

	name, err := resolveProjectName(cmd, noInput)
	if err != nil {
		return err
	}
	ctx.Set("project_name", name)

	force, _ := cmd.Flags().GetBool("force")
	ctx.Set("force", force)

	var presenter wizard.Presenter
	if noInput {
		presenter = interactive.NonInteractive{}
	} else {
		presenter = interactive.Detect(os.Stdin, os.Stdout)
	}

	result, err := wizard.Run(ctx, menuSet, presenter)
	if errors.Is(err, wizard.ErrCancelled) {
		pterm.Warning.Println("Generation cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output")
	if err := writeManifest(result, outDir, name, force); err != nil {
		return err
	}

	pterm.Success.Println("Project successfully generated. You can read information about usage in README.md")
	return nil
}

// resolveProjectName takes the project name from the --name flag, or
// prompts for it. In --no-input mode a missing name is an error.
func resolveProjectName(cmd *cobra.Command, noInput bool) (string, error) {
	name, _ := cmd.Flags().GetString("name")
	if name != "" {
		return name, nil
	}
	if noInput {
		return "", fmt.Errorf("--name is required with --no-input")
	}
	return interactive.Text(&interactive.TextOptions{
		Message:           "Project name",
		Validation:        projectNamePattern,
		ValidationMessage: "Name must start with a letter and contain only letters, digits and underscores",
		Required:          true,
	})
}

// writeManifest renders the finished context as the project manifest the
// template renderer consumes.
func writeManifest(ctx *wizard.Context, outDir, name string, force bool) error {
	path := filepath.Join(outDir, name+".fastgen.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		pterm.Error.Println("Project with such name already exists!")
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Generating project manifest..."
	s.Start()
	defer s.Stop()

	data, err := yaml.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("failed to render manifest: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
