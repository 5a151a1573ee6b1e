// Package route maps dashboard paths onto pages, extracting path parameters
// and redirecting when a page cannot be shown.
package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/energyexe/dashboard/internal/auth"
)

const (
	HomePath  = "/"
	LoginPath = "/login"
)

// Route is one entry of the table. Pattern segments starting with ':' bind
// a parameter.
type Route struct {
	Name      string
	Pattern   string
	Protected bool
}

// Params holds the parameters bound by a match.
type Params map[string]string

// ParamError reports a parameter that is missing or malformed.
type ParamError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing route parameter %q", e.Name)
	}
	return fmt.Sprintf("route parameter %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// Int parses name as a positive integer id.
func (p Params) Int(name string) (int64, error) {
	raw, ok := p[name]
	if !ok {
		return 0, &ParamError{Name: name}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ParamError{Name: name, Value: raw, Err: err}
	}
	if n <= 0 {
		return 0, &ParamError{Name: name, Value: raw, Err: fmt.Errorf("must be positive")}
	}
	return n, nil
}

// Table is an ordered list of routes; the first match wins.
type Table []Route

// DefaultTable returns the dashboard pages.
func DefaultTable() Table {
	return Table{
		{Name: "dashboard", Pattern: "/", Protected: true},
		{Name: "login", Pattern: LoginPath},
		{Name: "windfarms", Pattern: "/windfarms", Protected: true},
		{Name: "windfarm", Pattern: "/windfarms/:id", Protected: true},
		{Name: "theme", Pattern: "/settings/theme"},
	}
}

// Match finds the route for path.
func (t Table) Match(path string) (Route, Params, bool) {
	segs := split(path)
	for _, r := range t {
		if params, ok := match(split(r.Pattern), segs); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Decision is the outcome of resolving a path for a session.
type Decision struct {
	Route    Route
	Params   Params
	Redirect string
}

// Resolve decides what to show for path. Unknown paths redirect home,
// protected pages redirect to login for anonymous sessions, and while the
// session is still loading nothing is decided.
func (t Table) Resolve(path string, s auth.Session) (Decision, bool) {
	r, params, ok := t.Match(path)
	if !ok {
		return Decision{Redirect: HomePath}, true
	}
	if r.Protected {
		if s.IsLoading {
			return Decision{}, false
		}
		if !s.IsAuthenticated {
			return Decision{Redirect: LoginPath}, true
		}
	}
	return Decision{Route: r, Params: params}, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segs []string) (Params, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segs[i] == "" {
				return nil, false
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
