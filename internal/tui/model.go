// Package tui hosts the campus site in the terminal. Pages are node trees
// built from the primitives; the host owns focus, dispatches keys as clicks
// and drains toast timers on the bubbletea event loop.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/campus/internal/config"
	"github.com/alexisbeaulieu97/campus/internal/events"
	"github.com/alexisbeaulieu97/campus/internal/logger"
	"github.com/alexisbeaulieu97/campus/internal/site/admin"
	"github.com/alexisbeaulieu97/campus/internal/site/content"
	"github.com/alexisbeaulieu97/campus/internal/site/registration"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/checkbox"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/selectmenu"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/tabs"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/toast"
)

// Field ids of the text inputs.
const (
	fieldFirstName  = "firstName"
	fieldLastName   = "lastName"
	fieldEmail      = "email"
	fieldPhone      = "phone"
	fieldMotivation = "motivation"
	fieldUsername   = "username"
	fieldPassword   = "password"
)

const allLevels = "all"

// Options wires the site services into the host.
type Options struct {
	Config        *config.Config
	Catalog       *content.Catalog
	Registrations *registration.Service
	Admin         *admin.Session
	Publisher     events.Publisher
	Logger        *logger.Logger
	// Clock drives toast expiry. Fired timers are always delivered through
	// the event loop; Clock only decides when they fire.
	Clock toast.Clock
	Page  Page
	Width int
}

// state is shared by every copy of Model; node callbacks close over it.
type state struct {
	ctx    context.Context
	cancel context.CancelFunc

	catalog   *content.Catalog
	service   *registration.Service
	session   *admin.Session
	publisher events.Publisher
	log       *logger.Logger

	clock  *loopClock
	toasts *toast.Queue
	// notice is the admin demo-data banner, mounted while signed in.
	notice    *toast.Root
	noticeFor time.Duration

	page     Page
	focus    int
	focusKey string
	offset   int

	inputs     map[string]*textinput.Model
	motivation *textarea.Model
	levels     *selectmenu.Select
	course     *selectmenu.Select
	experience *selectmenu.Select
	terms      *checkbox.Checkbox
	marketing  *checkbox.Checkbox
	adminTabs  *tabs.Tabs

	submitting bool
	spinner    spinner.Model

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	pending  []tea.Cmd
	quitting bool
}

// Model is the bubbletea model of the campus site.
type Model struct {
	st *state
}

// NewModel constructs the host. Missing services are created with defaults.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NewLoggingPublisher(log)
	}
	service := opts.Registrations
	if service == nil {
		service = registration.NewService(registration.Options{
			Catalog:   catalog,
			Publisher: publisher,
			Logger:    log,
			Latency:   cfg.Registration.Latency,
		})
	}
	session := opts.Admin
	if session == nil {
		session = admin.NewSession(admin.Options{
			Username:  cfg.Admin.Username,
			Password:  cfg.Admin.Password,
			Publisher: publisher,
			Logger:    log,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	st := &state{
		ctx:       ctx,
		cancel:    cancel,
		catalog:   catalog,
		service:   service,
		session:   session,
		publisher: publisher,
		log:       log.With("component", "tui"),
		clock:     newLoopClock(opts.Clock),
		page:      opts.Page,
		keys:      newKeyMap(),
		help:      help.New(),
		width:     opts.Width,
	}
	st.toasts = toast.NewQueue(toast.Options{
		Duration: cfg.Toast.Duration,
		Clock:    st.clock,
		OnChange: st.toastChanged,
	})
	st.noticeFor = 2 * cfg.Toast.Duration

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	st.spinner = sp

	st.levels = selectmenu.New(selectmenu.Options{
		ID:           "level-filter",
		DefaultValue: allLevels,
	})
	st.refreshLevels()
	st.adminTabs = tabs.New(tabs.Options{
		ID:           "admin",
		DefaultValue: "registrations",
		Tabs: []tabs.Tab{
			{Value: "registrations", Label: "Registrations"},
			{Value: "courses", Label: "Courses"},
			{Value: "instructors", Label: "Instructors"},
			{Value: "settings", Label: "Settings"},
		},
	})
	st.inputs = map[string]*textinput.Model{
		fieldFirstName: newInput("John", 0),
		fieldLastName:  newInput("Doe", 0),
		fieldEmail:     newInput("john.doe@example.com", 0),
		fieldPhone:     newInput("+1 (555) 123-4567", 0),
		fieldUsername:  newInput("admin", 0),
		fieldPassword:  newInput("admin123", textinput.EchoPassword),
	}
	st.resetForm()

	return Model{st: st}
}

func newInput(placeholder string, mode textinput.EchoMode) *textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 120
	in.EchoMode = mode
	in.Cursor.SetMode(cursor.CursorStatic)
	return &in
}

// refreshLevels offers only the levels the catalog has courses for. A
// filter left pointing at a vanished level falls back to all levels.
func (s *state) refreshLevels() {
	items := []selectmenu.Item{{Value: allLevels, Label: "All Levels"}}
	for _, level := range content.Levels() {
		if len(s.catalog.CoursesByLevel(level)) == 0 {
			continue
		}
		items = append(items, selectmenu.Item{Value: string(level), Label: string(level)})
	}
	s.levels.SetItems(items)
	if _, ok := s.levels.SelectedItem(); !ok {
		s.levels.Choose(allLevels)
	}
}

// resetForm clears the registration page back to its initial state.
func (s *state) resetForm() {
	for _, id := range []string{fieldFirstName, fieldLastName, fieldEmail, fieldPhone} {
		s.inputs[id].Reset()
	}
	ta := textarea.New()
	ta.Placeholder = "Tell us why you want to take this course..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.Cursor.SetMode(cursor.CursorStatic)
	s.motivation = &ta

	courses := make([]selectmenu.Item, 0, len(s.catalog.Courses))
	for _, c := range s.catalog.Courses {
		courses = append(courses, selectmenu.Item{Value: c.ID, Label: c.Title})
	}
	s.course = selectmenu.New(selectmenu.Options{ID: "course", Name: "course", Required: true, Items: courses})

	title := cases.Title(language.English)
	levels := make([]selectmenu.Item, 0, len(registration.ExperienceLevels))
	for _, level := range registration.ExperienceLevels {
		levels = append(levels, selectmenu.Item{Value: level, Label: title.String(level)})
	}
	s.experience = selectmenu.New(selectmenu.Options{ID: "experience", Name: "experience", Required: true, Items: levels})

	s.terms = checkbox.New(checkbox.Options{
		Name:     "agreeToTerms",
		Required: true,
		Props:    node.Props{ID: "terms"},
	})
	s.marketing = checkbox.New(checkbox.Options{
		Name:  "agreeToMarketing",
		Props: node.Props{ID: "marketing"},
	})
}

// form collects the registration page into a submission.
func (s *state) form() registration.Form {
	return registration.Form{
		FirstName:        s.inputs[fieldFirstName].Value(),
		LastName:         s.inputs[fieldLastName].Value(),
		Email:            s.inputs[fieldEmail].Value(),
		Phone:            s.inputs[fieldPhone].Value(),
		Course:           s.course.Value(),
		Experience:       s.experience.Value(),
		Motivation:       s.motivation.Value(),
		AgreeToTerms:     s.terms.Checked(),
		AgreeToMarketing: s.marketing.Checked(),
	}
}

func (s *state) toastChanged(change toast.Change) {
	s.log.With("kind", string(change.Kind), "toast", change.ID, "open", len(change.Toasts)).Debug("toast queue changed")
	if err := s.publisher.Publish(s.ctx, events.New(events.ToastChanged, "kind", string(change.Kind), "id", change.ID)); err != nil {
		s.log.Error(err, "publish toast change")
	}
}

// enqueue schedules cmd to run after the current update.
func (s *state) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		s.pending = append(s.pending, cmd)
	}
}

func (s *state) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Init starts waiting for toast timers.
func (m Model) Init() tea.Cmd {
	return m.st.clock.wait()
}

// Page returns the page on screen.
func (m Model) Page() Page {
	return m.st.page
}

// Toasts returns the toasts currently queued.
func (m Model) Toasts() []toast.Item {
	return m.st.toasts.Toasts()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.st.quitting
}

// Submitting reports whether a registration is in flight.
func (m Model) Submitting() bool {
	return m.st.submitting
}

// Close cancels in-flight work and stops toast timers.
func (m Model) Close() {
	m.st.cancel()
	m.st.dropNotice()
	m.st.toasts.Close()
	m.st.clock.stop()
}

// Focused returns the focus key of the focused element: its id, or its tag
// and text when it has none.
func (m Model) Focused() string {
	_, key := m.st.resolveFocus(m.st.screen())
	return key
}

func (s *state) navigate(page Page) {
	if page == s.page {
		return
	}
	s.page = page
	s.offset = 0
	s.focusKey = navID(page)
	if page == PageCourses {
		s.refreshLevels()
	}
	s.log.With("page", page.String()).Debug("navigate")
}

func navID(page Page) string {
	return "nav-" + page.String()
}

func trimFocus(key string) string {
	if before, _, ok := strings.Cut(key, "-option-"); ok {
		return before + "-trigger"
	}
	return ""
}
