// Package content holds the static site catalog: courses, instructors and
// the demo dashboard data. The default catalog is embedded in the binary.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/campus/internal/config"
	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
)

//go:embed catalog.yaml
var embedded []byte

// EmbeddedSource names the built-in catalog in errors.
const EmbeddedSource = "embedded:catalog.yaml"

// Level is a course difficulty.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// Levels lists every level in ascending difficulty.
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced}
}

// Catalog is everything the site pages display.
type Catalog struct {
	Site        Site         `yaml:"site" validate:"required"`
	Features    []Feature    `yaml:"features" validate:"dive"`
	Highlights  []Highlight  `yaml:"highlights" validate:"dive"`
	Courses     []Course     `yaml:"courses" validate:"min=1,dive"`
	Instructors []Instructor `yaml:"instructors" validate:"dive"`
	Dashboard   Dashboard    `yaml:"dashboard"`
}

// Site carries branding and contact details.
type Site struct {
	Name    string `yaml:"name" validate:"required"`
	Tagline string `yaml:"tagline"`
	Pitch   string `yaml:"pitch"`
	Phone   string `yaml:"phone" validate:"omitempty,phone"`
	Email   string `yaml:"email" validate:"omitempty,email"`
	Address string `yaml:"address"`
}

// Feature is one home page selling point.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Highlight is one headline number on the home page.
type Highlight struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Course is one catalog entry.
type Course struct {
	ID          string  `yaml:"id" validate:"required,slug"`
	Title       string  `yaml:"title" validate:"required"`
	Description string  `yaml:"description"`
	Duration    string  `yaml:"duration"`
	Students    int     `yaml:"students" validate:"gte=0"`
	Rating      float64 `yaml:"rating" validate:"gte=0,lte=5"`
	Price       string  `yaml:"price"`
	Level       Level   `yaml:"level" validate:"oneof=Beginner Intermediate Advanced"`
	Instructor  string  `yaml:"instructor"`
}

// Instructor is one teacher profile.
type Instructor struct {
	Name       string   `yaml:"name" validate:"required"`
	Title      string   `yaml:"title"`
	Bio        string   `yaml:"bio"`
	Expertise  []string `yaml:"expertise"`
	Rating     float64  `yaml:"rating" validate:"gte=0,lte=5"`
	Students   int      `yaml:"students" validate:"gte=0"`
	Courses    int      `yaml:"courses" validate:"gte=0"`
	Location   string   `yaml:"location"`
	Experience string   `yaml:"experience"`
}

// Dashboard is the mock admin data.
type Dashboard struct {
	Stats         []Stat         `yaml:"stats" validate:"dive"`
	Registrations []Registration `yaml:"registrations" validate:"dive"`
	Settings      []string       `yaml:"settings"`
}

// Stat is one dashboard counter. Target scales its progress bar.
type Stat struct {
	Label  string `yaml:"label" validate:"required"`
	Value  int    `yaml:"value" validate:"gte=0"`
	Target int    `yaml:"target" validate:"gte=0"`
	Note   string `yaml:"note"`
}

// Registration is one row of the recent registrations table.
type Registration struct {
	Name   string `yaml:"name" validate:"required"`
	Email  string `yaml:"email" validate:"required,email"`
	Course string `yaml:"course" validate:"required"`
	Date   string `yaml:"date" validate:"required,datetime=2006-01-02"`
}

// Load reads the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embedded, EmbeddedSource)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, campuserrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Default returns the embedded catalog. It panics if the embedded file is
// invalid, which only a broken build can cause.
func Default() *Catalog {
	catalog, err := Parse(embedded, EmbeddedSource)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog: %v", err))
	}
	return catalog
}

// Parse decodes and validates a catalog. source names the data in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, campuserrors.NewParseError(source, config.ErrorLine(err), err)
	}
	if err := Validate(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate checks struct tags and cross references: course ids are unique
// and every named course instructor has a profile.
func Validate(catalog *Catalog) error {
	if err := config.FirstValidationError(config.GetValidator().Struct(catalog)); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(catalog.Courses))
	for _, course := range catalog.Courses {
		if _, dup := seen[course.ID]; dup {
			return campuserrors.NewValidationError("courses.id", fmt.Sprintf("duplicate course id %q", course.ID), nil)
		}
		seen[course.ID] = struct{}{}
	}

	if len(catalog.Instructors) == 0 {
		return nil
	}
	known := make(map[string]struct{}, len(catalog.Instructors))
	for _, instructor := range catalog.Instructors {
		known[instructor.Name] = struct{}{}
	}
	for _, course := range catalog.Courses {
		if course.Instructor == "" {
			continue
		}
		if _, ok := known[course.Instructor]; !ok {
			return campuserrors.NewValidationError("courses.instructor",
				fmt.Sprintf("course %q names unknown instructor %q", course.ID, course.Instructor), nil)
		}
	}
	return nil
}

// Course returns the course with id.
func (c *Catalog) Course(id string) (Course, bool) {
	for _, course := range c.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

// CoursesByLevel returns the courses at level, or every course when level is
// empty. Matching ignores case.
func (c *Catalog) CoursesByLevel(level Level) []Course {
	if level == "" {
		return append([]Course(nil), c.Courses...)
	}
	var out []Course
	for _, course := range c.Courses {
		if strings.EqualFold(string(course.Level), string(level)) {
			out = append(out, course)
		}
	}
	return out
}

// Instructor returns the profile named name.
func (c *Catalog) Instructor(name string) (Instructor, bool) {
	for _, instructor := range c.Instructors {
		if instructor.Name == name {
			return instructor, true
		}
	}
	return Instructor{}, false
}
