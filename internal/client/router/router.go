// Package router maps client locations to screens and keeps private
// screens behind sign-in.
package router

import (
	"net/url"
	"strings"
	"sync"
)

// Route is a screen of the client.
type Route string

const (
	RouteLanding  Route = "/"
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	RouteEditor   Route = "/app"
	RouteCards    Route = "/cards"
	RouteTrain    Route = "/train"
	RouteProfile  Route = "/profile"
	RouteNotFound Route = "*"
)

var known = map[string]Route{
	"/":         RouteLanding,
	"/login":    RouteLogin,
	"/register": RouteRegister,
	"/app":      RouteEditor,
	"/cards":    RouteCards,
	"/train":    RouteTrain,
	"/profile":  RouteProfile,
}

// Private reports whether the route needs a signed-in user.
func (r Route) Private() bool {
	switch r {
	case RouteEditor, RouteCards, RouteTrain, RouteProfile:
		return true
	}
	return false
}

// Location is a resolved navigation target.
type Location struct {
	Route Route
	Path  string
	Query url.Values
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Parse resolves a raw location such as "/train?front=original". Unknown
// paths resolve to RouteNotFound and keep their path.
func Parse(raw string) Location {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{Route: RouteNotFound, Path: raw, Query: url.Values{}}
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	route, ok := known[path]
	if !ok {
		route = RouteNotFound
	}
	return Location{Route: route, Path: path, Query: u.Query()}
}

type authState interface {
	IsAuthenticated() bool
}

// Router keeps the current location and the back stack.
type Router struct {
	auth authState

	mu      sync.Mutex
	history []Location
}

func New(auth authState) *Router {
	return &Router{auth: auth}
}

// Navigate resolves raw, applies the sign-in guard and makes the result
// the current location. A guarded location is replaced by /login.
func (r *Router) Navigate(raw string) Location {
	loc := r.guard(Parse(raw))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, loc)
	return loc
}

// Back returns to the previous location, re-applying the guard. With no
// history left it goes to the landing page.
func (r *Router) Back() Location {
	r.mu.Lock()
	if len(r.history) > 0 {
		r.history = r.history[:len(r.history)-1]
	}
	var prev Location
	if n := len(r.history); n > 0 {
		prev = r.history[n-1]
	} else {
		prev = Parse("/")
		r.history = append(r.history, prev)
	}
	r.mu.Unlock()

	loc := r.guard(prev)
	if loc.Route != prev.Route {
		r.mu.Lock()
		r.history[len(r.history)-1] = loc
		r.mu.Unlock()
	}
	return loc
}

// Current returns the current location, or the landing page before the
// first navigation.
func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Parse("/")
	}
	return r.history[len(r.history)-1]
}

func (r *Router) guard(loc Location) Location {
	if loc.Route.Private() && !r.auth.IsAuthenticated() {
		return Parse(string(RouteLogin))
	}
	return loc
}
