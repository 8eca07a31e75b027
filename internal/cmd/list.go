package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"fexplorer/internal/commands"
	fexerrors "fexplorer/internal/errors"
	"fexplorer/internal/filter"
	"fexplorer/internal/render"
)

//nolint:gochecknoglobals // Cobra CLI pattern for flag variables
var (
	listOutput  string
	listExclude []string
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "Print a one-shot listing of a directory",
	Long: `List the immediate children of a directory with their size and the seconds
since they were last modified, then exit. The directory defaults to the start directory.

Entries whose names match any --exclude regular expression are left out.`,
	Example: `  fexplorer list
  fexplorer list ~/projects -o json
  fexplorer list --exclude '\.log$' --exclude '^\.'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", render.FormatTable, "Output format: table, json, yaml")
	listCmd.Flags().StringSliceVarP(&listExclude, "exclude", "x", nil, "Regex patterns for entry names to leave out")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	// Get the initialized app instance
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	if !render.IsValidFormat(listOutput) {
		return fexerrors.NewValidationError("output", listOutput, "supported_values",
			"output must be one of: table, json, yaml")
	}

	entryFilter, err := filter.New(listExclude, app.Logger)
	if err != nil {
		return fexerrors.NewValidationError("exclude", "", "regex", err.Error())
	}

	dir := app.StartDir
	if len(args) == 1 {
		dir = app.NewExplorer("").Resolve(args[0])
	}

	result, err := commands.NewListCommand(app.FileSystem, app.Logger).Execute(cmd.Context(), commands.ListRequest{
		Dir:    dir,
		Filter: entryFilter,
	})
	if err != nil {
		return err
	}

	return render.Write(cmd.OutOrStdout(), listOutput, result.Entries)
}
