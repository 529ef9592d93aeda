package intent

import (
	"regexp"

	"github.com/go-vgo/robotgo"
)

// Source supplies the active application context, polled once per frame.
type Source interface {
	Current() Context
}

// StaticSource always reports the same context. Useful for single-purpose
// setups and for tests.
type StaticSource struct {
	Tag Context
}

func (s StaticSource) Current() Context {
	if s.Tag == "" {
		return ContextUnknown
	}
	return s.Tag
}

// TitleRule classifies a window title by pattern.
type TitleRule struct {
	Pattern *regexp.Regexp
	Context Context
}

// DefaultTitleRules matches common application titles. First match wins.
func DefaultTitleRules() []TitleRule {
	return []TitleRule{
		{regexp.MustCompile(`(?i)(youtube|vlc|spotify|netflix|media player)`), ContextMedia},
		{regexp.MustCompile(`(?i)(chrome|chromium|firefox|edge|safari|brave)`), ContextBrowser},
		{regexp.MustCompile(`(?i)(visual studio code|vs ?code|goland|intellij|pycharm|vim|emacs)`), ContextIDE},
		{regexp.MustCompile(`(?i)(\.pdf|\.docx?|libreoffice|acrobat|word)`), ContextDocument},
		{regexp.MustCompile(`(?i)(file explorer|nautilus|dolphin|finder|thunar)`), ContextExplorer},
	}
}

// WindowSource classifies the currently focused window's title. Titles
// matching no rule report ContextUnknown, as does a title lookup failure.
type WindowSource struct {
	rules []TitleRule
	title func() string
}

// NewWindowSource builds a WindowSource over the OS focused-window title.
func NewWindowSource(rules []TitleRule) *WindowSource {
	if len(rules) == 0 {
		rules = DefaultTitleRules()
	}
	return &WindowSource{rules: rules, title: func() string { return robotgo.GetTitle() }}
}

func (s *WindowSource) Current() Context {
	title := s.title()
	if title == "" {
		return ContextUnknown
	}
	for _, r := range s.rules {
		if r.Pattern.MatchString(title) {
			return r.Context
		}
	}
	return ContextUnknown
}
