package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/ui/components"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/checkbox"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/label"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/selectmenu"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/toast"
)

// screen builds the whole window: navigation, the current page and the
// toast viewport.
func (s *state) screen() *node.Node {
	return node.Fragment(
		s.navbar(),
		s.body(),
		s.toasts.Viewport(node.Props{Label: "Notifications"}),
	)
}

func (s *state) body() *node.Node {
	switch s.page {
	case PageCourses:
		return s.coursesPage()
	case PageInstructors:
		return s.instructorsPage()
	case PageRegister:
		return s.registerPage()
	case PageAdmin:
		return s.adminPage()
	default:
		return s.homePage()
	}
}

func (s *state) navbar() *node.Node {
	links := make([]*node.Node, 0, len(Pages())+1)
	links = append(links, node.El("strong", node.Props{}, node.Text(s.catalog.Site.Name)))
	for _, page := range Pages() {
		variant := components.ButtonGhost
		if page == s.page {
			variant = components.ButtonSecondary
		}
		target := page
		links = append(links, components.Button(
			components.ButtonOptions{Variant: variant, Size: components.ButtonSizeSmall, AsChild: true},
			node.El("a", node.Props{
				ID:      navID(page),
				Href:    "/" + page.String(),
				OnClick: func() { s.navigate(target) },
			}, node.Text(page.Title())),
		))
	}
	return node.El("nav", node.Props{}, links...)
}

func (s *state) link(href, text string, variant components.ButtonVariant, page Page) *node.Node {
	return components.LinkButton(href, text, variant, func() { s.navigate(page) })
}

func (s *state) homePage() *node.Node {
	site := s.catalog.Site

	highlights := make([]*node.Node, 0, len(s.catalog.Highlights))
	for _, h := range s.catalog.Highlights {
		highlights = append(highlights, node.El("div", node.Props{},
			node.El("h2", node.Props{}, node.Text(h.Value)),
			node.El("p", node.Props{}, node.Text(h.Label)),
		))
	}

	features := make([]*node.Node, 0, len(s.catalog.Features))
	for _, f := range s.catalog.Features {
		features = append(features, components.Card(node.Props{},
			components.CardHeader(components.CardTitle(f.Title)),
			components.CardDescription(f.Description),
		))
	}

	return node.El("main", node.Props{ID: "home"},
		node.El("section", node.Props{}.WithData("part", "hero"),
			node.El("h1", node.Props{}, node.Text(site.Tagline)),
			node.El("p", node.Props{}, node.Text(site.Pitch)),
			node.El("div", node.Props{},
				s.link("/courses", "Browse Courses", components.ButtonDefault, PageCourses),
				s.link("/register", "Register Now", components.ButtonOutline, PageRegister),
			),
		),
		node.El("section", node.Props{}.WithData("layout", "row"), highlights...),
		node.El("h2", node.Props{}, node.Text("Why Choose "+site.Name+"?")),
		node.El("section", node.Props{}.WithData("layout", "grid"), features...),
		s.footer(),
	)
}

func (s *state) footer() *node.Node {
	site := s.catalog.Site
	return node.El("footer", node.Props{},
		node.El("hr", node.Props{}),
		node.El("p", node.Props{}, node.Text(fmt.Sprintf("%s · %s · %s", site.Phone, site.Email, site.Address))),
	)
}

func (s *state) coursesPage() *node.Node {
	courses := s.catalog.Courses
	if filter := s.levels.Value(); filter != allLevels && filter != "" {
		courses = s.catalog.CoursesByLevel(content.Level(filter))
	}

	cards := make([]*node.Node, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, s.courseCard(c))
	}
	var list *node.Node
	if len(cards) == 0 {
		list = node.El("p", node.Props{}, node.Text("No courses found for this level."))
	} else {
		list = node.El("section", node.Props{}.WithData("layout", "grid"), cards...)
	}

	return node.El("main", node.Props{ID: "courses"},
		node.El("h1", node.Props{}, node.Text("Our Courses")),
		node.El("p", node.Props{}, node.Text("Choose from our wide range of professional courses designed to advance your career")),
		node.El("div", node.Props{}.WithData("part", "field"),
			label.For(s.levels.ID()+"-trigger", "Filter by level"),
			selectField(s.levels, "All Levels"),
		),
		list,
	)
}

func (s *state) courseCard(c content.Course) *node.Node {
	id := c.ID
	choose := func() {
		s.course.Choose(id)
		s.navigate(PageRegister)
	}
	enroll := components.Button(components.ButtonOptions{Props: node.Props{
		ID:      "enroll-" + id,
		OnClick: choose,
	}}, node.Text("Enroll Now"))

	return components.Card(node.Props{ID: "course-" + id},
		components.CardHeader(
			components.CardTitle(c.Title),
			components.LevelBadge(c.Level),
		),
		components.CardDescription(c.Description),
		components.CardContent(
			node.El("div", node.Props{}, node.Text("Duration: "+c.Duration)),
			node.El("div", node.Props{}, node.Text(fmt.Sprintf("Students: %s · Rating: %.1f", components.FormatCount(c.Students), c.Rating))),
			node.El("div", node.Props{}, node.Text("Instructor: "+c.Instructor)),
		),
		components.CardFooter(
			node.El("strong", node.Props{}, node.Text(c.Price)),
			enroll,
		),
	)
}

func (s *state) instructorsPage() *node.Node {
	cards := make([]*node.Node, 0, len(s.catalog.Instructors))
	for _, in := range s.catalog.Instructors {
		badges := make([]*node.Node, 0, len(in.Expertise))
		for _, skill := range in.Expertise {
			badges = append(badges, components.Badge(skill, ""))
		}
		cards = append(cards, components.Card(node.Props{},
			components.CardHeader(
				components.CardTitle(in.Name),
				components.CardDescription(in.Title),
			),
			components.CardContent(
				node.El("p", node.Props{}, node.Text(in.Bio)),
				node.El("div", node.Props{}, badges...),
				node.El("div", node.Props{}, node.Text(fmt.Sprintf("★ %.1f · %s students · %d courses",
					in.Rating, components.FormatCount(in.Students), in.Courses))),
				node.El("div", node.Props{}, node.Text(in.Location+" · "+in.Experience)),
			),
		))
	}
	return node.El("main", node.Props{ID: "instructors"},
		node.El("h1", node.Props{}, node.Text("Our Instructors")),
		node.El("p", node.Props{}, node.Text("Learn from industry experts with years of real-world experience")),
		node.El("section", node.Props{}.WithData("layout", "grid"), cards...),
	)
}

func (s *state) registerPage() *node.Node {
	submitLabel := []*node.Node{node.Text("Submit Registration")}
	if s.submitting {
		submitLabel = []*node.Node{node.Text(s.spinner.View() + " Submitting...")}
	}
	submit := components.Button(components.ButtonOptions{
		Size: components.ButtonSizeLarge,
		Props: node.Props{
			ID:       "submit",
			Disabled: s.submitting,
			OnClick:  s.submit,
		},
	}, submitLabel...)

	return node.El("main", node.Props{ID: "register"},
		node.El("h1", node.Props{}, node.Text("Course Registration")),
		node.El("p", node.Props{}, node.Text("Fill out the form below to register for your chosen course")),
		components.Card(node.Props{},
			components.CardHeader(
				components.CardTitle("Registration Form"),
				components.CardDescription("Please provide accurate information for your registration"),
			),
			components.CardContent(
				node.El("div", node.Props{}.WithData("layout", "row"),
					s.textField(fieldFirstName, "First Name *"),
					s.textField(fieldLastName, "Last Name *"),
				),
				s.textField(fieldEmail, "Email Address *"),
				s.textField(fieldPhone, "Phone Number *"),
				node.El("div", node.Props{}.WithData("part", "field"),
					label.For(s.course.ID()+"-trigger", "Select Course *"),
					selectField(s.course, "Choose a course"),
				),
				node.El("div", node.Props{}.WithData("part", "field"),
					label.For(s.experience.ID()+"-trigger", "Experience Level *"),
					selectField(s.experience, "Select your experience level"),
				),
				components.Field(fieldMotivation, "Why do you want to take this course?",
					components.Textarea(fieldMotivation, s.motivation.Placeholder, s.motivation.Value())),
				checkboxField(s.terms, "I agree to the terms and conditions *"),
				checkboxField(s.marketing, "I would like to receive marketing communications"),
			),
			components.CardFooter(submit),
		),
	)
}

func (s *state) textField(id, caption string) *node.Node {
	in := s.inputs[id]
	value := in.Value()
	if id == fieldPassword {
		value = strings.Repeat("•", len([]rune(value)))
	}
	return components.Field(id, caption, components.Input(id, in.Placeholder, value))
}

func (s *state) adminPage() *node.Node {
	if !s.session.Authenticated() {
		return node.El("main", node.Props{ID: "admin"},
			components.Card(node.Props{},
				components.CardHeader(
					components.CardTitle("Admin Login"),
					components.CardDescription("Enter your credentials to access the admin dashboard"),
				),
				components.CardContent(
					s.textField(fieldUsername, "Username"),
					s.textField(fieldPassword, "Password"),
				),
				components.CardFooter(components.Button(components.ButtonOptions{Props: node.Props{
					ID:      "login",
					OnClick: s.login,
				}}, node.Text("Login"))),
			),
		)
	}

	user, since := s.session.User()
	stats := make([]*node.Node, 0, len(s.catalog.Dashboard.Stats))
	for _, stat := range s.catalog.Dashboard.Stats {
		stats = append(stats, components.StatCard(stat))
	}

	t := s.adminTabs
	return node.El("main", node.Props{ID: "admin"},
		node.El("h1", node.Props{}, node.Text("Admin Dashboard")),
		node.El("div", node.Props{},
			node.El("span", node.Props{}, node.Text(fmt.Sprintf("Signed in as %s since %s", user, since.Format("15:04")))),
			components.Button(components.ButtonOptions{
				Variant: components.ButtonOutline,
				Size:    components.ButtonSizeSmall,
				Props:   node.Props{ID: "logout", OnClick: s.logout},
			}, node.Text("Logout")),
		),
		s.noticeBanner(),
		node.El("section", node.Props{}.WithData("layout", "grid"), stats...),
		t.Root(node.Props{},
			t.List(node.Props{}),
			t.Content("registrations", node.Props{}, s.registrationsPanel()),
			t.Content("courses", node.Props{}, s.coursesPanel()),
			t.Content("instructors", node.Props{}, s.instructorsPanel()),
			t.Content("settings", node.Props{}, s.settingsPanel()),
		),
	)
}

func (s *state) noticeBanner() *node.Node {
	if s.notice == nil || !s.notice.IsOpen() {
		return nil
	}
	notice := s.notice
	return node.El("ol", node.Props{ID: "admin-notice", Label: "Notices"},
		notice.Render(node.Props{},
			toast.Title("Demo data"),
			toast.Description("Dashboard figures are sample data and reset on exit."),
			toast.CloseButton(func() { notice.SetOpen(false) }),
		),
	)
}

func (s *state) registrationsPanel() *node.Node {
	rows := append(s.service.Recent(), s.catalog.Dashboard.Registrations...)
	items := make([]*node.Node, 0, len(rows))
	for _, r := range rows {
		items = append(items, node.El("li", node.Props{},
			node.Text(fmt.Sprintf("%s · %s · %s · %s", r.Name, r.Email, r.Course, r.Date))))
	}
	return node.Fragment(
		node.El("h3", node.Props{}, node.Text("Recent Registrations")),
		node.El("ul", node.Props{}, items...),
	)
}

func (s *state) coursesPanel() *node.Node {
	items := make([]*node.Node, 0, len(s.catalog.Courses))
	for _, c := range s.catalog.Courses {
		items = append(items, node.El("li", node.Props{},
			node.Text(fmt.Sprintf("%s · %s students · %s ", c.Title, components.FormatCount(c.Students), c.Price)),
			components.LevelBadge(c.Level),
		))
	}
	return node.Fragment(
		node.El("h3", node.Props{}, node.Text("Course Management")),
		node.El("ul", node.Props{}, items...),
	)
}

func (s *state) instructorsPanel() *node.Node {
	items := make([]*node.Node, 0, len(s.catalog.Instructors))
	for _, in := range s.catalog.Instructors {
		items = append(items, node.El("li", node.Props{},
			node.Text(fmt.Sprintf("%s · %s · %d courses", in.Name, in.Title, in.Courses))))
	}
	return node.Fragment(
		node.El("h3", node.Props{}, node.Text("Instructor Management")),
		node.El("ul", node.Props{}, items...),
	)
}

func (s *state) settingsPanel() *node.Node {
	items := make([]*node.Node, 0, len(s.catalog.Dashboard.Settings))
	for _, setting := range s.catalog.Dashboard.Settings {
		items = append(items, node.El("li", node.Props{}, node.Text(setting)))
	}
	return node.Fragment(
		node.El("h3", node.Props{}, node.Text("System Settings")),
		node.El("ul", node.Props{}, items...),
	)
}

// selectField renders a trigger and, while open, the listbox below it.
func selectField(sel *selectmenu.Select, placeholder string) *node.Node {
	return node.Fragment(
		sel.Trigger(node.Props{}, sel.ValueText(placeholder), sel.Icon()),
		sel.Content(node.Props{}, sel.Viewport(sel.Items()...)),
	)
}

func checkboxField(c *checkbox.Checkbox, caption string) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "field"),
		c.Root(c.Indicator(node.Props{}), node.Text(caption)),
	)
}
