package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/campus/internal/tui"
)

type snapshotOptions struct {
	format string
	width  int
}

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot [page]",
		Short: "Render one page without starting the interactive site",
		Long: fmt.Sprintf("Render a page once and print it. Pages: %s. Formats: %s.",
			strings.Join(pageNames(), ", "), strings.Join(tui.Formats(), ", ")),
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return pageNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := tui.PageHome.String()
			if len(args) == 1 {
				name = args[0]
			}
			return runSnapshot(cmd, flags, opts, name)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", tui.FormatText, "Output format: text, markup or styled")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 80, "Layout width in columns for the styled format")

	return cmd
}

func runSnapshot(cmd *cobra.Command, flags *rootFlags, opts *snapshotOptions, name string) error {
	page, ok := tui.ParsePage(name)
	if !ok {
		return newCommandError("render snapshot", name, fmt.Errorf("unknown page %q", name),
			"Use one of: "+strings.Join(pageNames(), ", ")+".")
	}
	if !slices.Contains(tui.Formats(), opts.format) {
		return newCommandError("render snapshot", name, fmt.Errorf("unknown format %q", opts.format),
			"Use one of: "+strings.Join(tui.Formats(), ", ")+".")
	}
	if opts.width < 20 {
		return newCommandError("render snapshot", name, fmt.Errorf("width %d is too narrow", opts.width),
			"Pass --width 20 or more.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	app.log.With("page", page.String(), "format", opts.format).Debug("rendering snapshot")
	return writeSnapshot(cmd.OutOrStdout(), app.model(page, opts.width), opts.format)
}

func pageNames() []string {
	names := make([]string, 0, len(tui.Pages()))
	for _, page := range tui.Pages() {
		names = append(names, page.String())
	}
	return names
}
