package prefs

import (
	"slices"
	"strings"
)

const (
	darkClass        = "dark"
	themeClassPrefix = "theme-"
)

// StyleRoot is the single global element whose classes encode the active
// preferences.
type StyleRoot interface {
	Add(class string)
	Remove(class string)
	Classes() []string
}

// ThemeClass returns the root class for t, e.g. "theme-obsidian".
func ThemeClass(t Theme) string {
	return themeClassPrefix + string(t)
}

// Reflect brings root in line with s: exactly one theme class, and "dark"
// present only in dark mode. Applying it repeatedly is a no-op.
func Reflect(root StyleRoot, s State) {
	if root == nil {
		return
	}
	root.Remove(darkClass)
	for _, class := range root.Classes() {
		if strings.HasPrefix(class, themeClassPrefix) {
			root.Remove(class)
		}
	}
	root.Add(ThemeClass(s.Theme))
	if s.Mode == ModeDark {
		root.Add(darkClass)
	}
}

// ClassList is an ordered set of class names. The zero value is empty and
// ready to use.
type ClassList struct {
	classes []string
}

// NewClassList returns a list holding classes, duplicates dropped.
func NewClassList(classes ...string) *ClassList {
	l := &ClassList{}
	for _, c := range classes {
		l.Add(c)
	}
	return l
}

func (l *ClassList) Add(class string) {
	if class == "" || l.Contains(class) {
		return
	}
	l.classes = append(l.classes, class)
}

func (l *ClassList) Remove(class string) {
	l.classes = slices.DeleteFunc(l.classes, func(c string) bool { return c == class })
}

// Classes returns a copy of the classes in insertion order.
func (l *ClassList) Classes() []string {
	return slices.Clone(l.classes)
}

func (l *ClassList) Contains(class string) bool {
	return slices.Contains(l.classes, class)
}

// String renders the list the way a class attribute would.
func (l *ClassList) String() string {
	return strings.Join(l.classes, " ")
}
