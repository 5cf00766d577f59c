package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/ui/components"
)

type coursesOptions struct {
	level      string
	jsonOutput bool
}

func newCoursesCmd(flags *rootFlags) *cobra.Command {
	opts := &coursesOptions{}

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCourses(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "Only show courses of this level (beginner, intermediate, advanced)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCourses(cmd *cobra.Command, flags *rootFlags, opts *coursesOptions) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	courses := app.catalog.Courses
	if opts.level != "" {
		level, ok := parseLevel(opts.level)
		if !ok {
			return newCommandError("list courses", opts.level, fmt.Errorf("unknown level %q", opts.level),
				"Use beginner, intermediate or advanced.")
		}
		courses = app.catalog.CoursesByLevel(level)
	}

	if opts.jsonOutput {
		return renderCoursesJSON(cmd, courses)
	}
	if len(courses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No courses found for this level.")
		return nil
	}
	return renderCoursesTable(cmd, courses)
}

func parseLevel(value string) (content.Level, bool) {
	for _, level := range content.Levels() {
		if strings.EqualFold(string(level), value) {
			return level, true
		}
	}
	return "", false
}

func renderCoursesTable(cmd *cobra.Command, courses []content.Course) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tLEVEL\tDURATION\tSTUDENTS\tRATING\tPRICE\tINSTRUCTOR")
	for _, c := range courses {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\t%s\n",
			c.ID,
			c.Title,
			c.Level,
			c.Duration,
			components.FormatCount(c.Students),
			c.Rating,
			c.Price,
			c.Instructor,
		)
	}

	return writer.Flush()
}

type courseJSON struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Level      string  `json:"level"`
	Duration   string  `json:"duration"`
	Students   int     `json:"students"`
	Rating     float64 `json:"rating"`
	Price      string  `json:"price"`
	Instructor string  `json:"instructor"`
}

func renderCoursesJSON(cmd *cobra.Command, courses []content.Course) error {
	payload := make([]courseJSON, len(courses))
	for i, c := range courses {
		payload[i] = courseJSON{
			ID:         c.ID,
			Title:      c.Title,
			Level:      string(c.Level),
			Duration:   c.Duration,
			Students:   c.Students,
			Rating:     c.Rating,
			Price:      c.Price,
			Instructor: c.Instructor,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
