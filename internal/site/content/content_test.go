package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
)

func TestEmbeddedCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "EduCenter", catalog.Site.Name)
	require.Len(t, catalog.Courses, 6)
	require.Len(t, catalog.Instructors, 6)
	require.Len(t, catalog.Features, 4)
	require.Len(t, catalog.Dashboard.Stats, 4)
	require.Equal(t, 5000, catalog.Dashboard.Stats[0].Value)
	require.Equal(t, []string{"John Doe", "Jane Smith", "Mike Johnson"}, []string{
		catalog.Dashboard.Registrations[0].Name,
		catalog.Dashboard.Registrations[1].Name,
		catalog.Dashboard.Registrations[2].Name,
	})

	course, ok := catalog.Course("react-mastery")
	require.True(t, ok)
	require.Equal(t, Intermediate, course.Level)
	require.Equal(t, "Sarah Johnson", course.Instructor)

	_, ok = catalog.Instructor(course.Instructor)
	require.True(t, ok)
	require.NotPanics(t, func() { Default() })
}

func TestCoursesByLevel(t *testing.T) {
	t.Parallel()

	catalog := Default()
	require.Len(t, catalog.CoursesByLevel(""), 6)
	require.Len(t, catalog.CoursesByLevel(Beginner), 3)
	require.Len(t, catalog.CoursesByLevel("intermediate"), 2)
	require.Len(t, catalog.CoursesByLevel(Advanced), 1)
	require.Empty(t, catalog.CoursesByLevel("Expert"))
	require.Equal(t, []Level{Beginner, Intermediate, Advanced}, Levels())
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "bad level",
			yaml:  "site: {name: X}\ncourses:\n  - {id: a, title: A, level: Expert}\n",
			field: "courses[0].level",
		},
		{
			name:  "bad slug",
			yaml:  "site: {name: X}\ncourses:\n  - {id: Not A Slug, title: A, level: Beginner}\n",
			field: "courses[0].id",
		},
		{
			name:  "duplicate id",
			yaml:  "site: {name: X}\ncourses:\n  - {id: a, title: A, level: Beginner}\n  - {id: a, title: B, level: Beginner}\n",
			field: "courses.id",
		},
		{
			name:  "unknown instructor",
			yaml:  "site: {name: X}\ncourses:\n  - {id: a, title: A, level: Beginner, instructor: Nobody}\ninstructors:\n  - {name: Somebody}\n",
			field: "courses.instructor",
		},
		{
			name:  "no courses",
			yaml:  "site: {name: X}\n",
			field: "courses",
		},
		{
			name:  "bad registration date",
			yaml:  "site: {name: X}\ncourses:\n  - {id: a, title: A, level: Beginner}\ndashboard:\n  registrations:\n    - {name: N, email: n@example.com, course: A, date: yesterday}\n",
			field: "dashboard.registrations[0].date",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml), "test.yaml")
			var validationErr *campuserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParseReportsSyntaxAndUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("site:\n  name: X\ncourses: [\n"), "broken.yaml")
	var parseErr *campuserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "broken.yaml", parseErr.Path)

	_, err = Parse([]byte("site: {name: X}\nteachers: []\n"), "unknown.yaml")
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: {name: Night School}\ncourses:\n  - {id: go-basics, title: Go Basics, level: Beginner}\n"), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Night School", catalog.Site.Name)
	require.Len(t, catalog.Courses, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *campuserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
