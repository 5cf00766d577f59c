package tui

import (
	"github.com/alexisbeaulieu97/campus/internal/site/registration"
)

// Page identifies one screen of the site.
type Page int

const (
	PageHome Page = iota
	PageCourses
	PageInstructors
	PageRegister
	PageAdmin
)

var pageNames = []string{"home", "courses", "instructors", "register", "admin"}

var pageTitles = []string{"Home", "Courses", "Instructors", "Register", "Admin"}

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{PageHome, PageCourses, PageInstructors, PageRegister, PageAdmin}
}

// String returns the page's command-line name.
func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return "unknown"
	}
	return pageNames[p]
}

// Title returns the navigation caption.
func (p Page) Title() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return ""
	}
	return pageTitles[p]
}

// ParsePage resolves a page by name.
func ParsePage(name string) (Page, bool) {
	for i, candidate := range pageNames {
		if candidate == name {
			return Page(i), true
		}
	}
	return PageHome, false
}

// NavigateMsg switches to another page.
type NavigateMsg struct {
	Page Page
}

// SubmitResultMsg carries the outcome of a registration submission.
type SubmitResultMsg struct {
	Receipt registration.Receipt
	Err     error
}

// timerFiredMsg delivers a toast timer to the event loop.
type timerFiredMsg struct {
	timer *loopTimer
}
