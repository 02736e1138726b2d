package router

import (
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/go-kyugo/usersvc/handler"
)

// Router is a lightweight wrapper around an underlying chi router that
// exposes a small, fluent API for registering controller actions.
type Router struct {
	r chi.Router
}

// New creates a new Router instance.
func New() *Router {
	return &Router{r: chi.NewRouter()}
}

// Registrer is implemented by controllers that register their own routes.
type Registrer interface {
	RegisterRoutes(*Router)
}

// Controller calls the controller's RegisterRoutes on this router.
func (rt *Router) Controller(c Registrer) *Router {
	if rt == nil || c == nil {
		return rt
	}
	c.RegisterRoutes(rt)
	return rt
}

// Use appends middleware applied to every route of the router. chi requires
// this to happen before the first route is registered.
func (rt *Router) Use(mws ...func(http.Handler) http.Handler) *Router {
	rt.r.Use(mws...)
	return rt
}

// Get registers a GET route on the root group.
func (rt *Router) Get(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return rt.Group("/").Get(p, h, mws...)
}

// Post registers a POST route on the root group.
func (rt *Router) Post(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return rt.Group("/").Post(p, h, mws...)
}

// Handler returns the underlying http.Handler to be used with http.Server.
func (rt *Router) Handler() http.Handler {
	return rt.r
}

// Route describes one registered method+pattern pair.
type Route struct {
	Method  string
	Pattern string
}

// Routes lists registered routes sorted by pattern then method.
func (rt *Router) Routes() []Route {
	var out []Route
	_ = chi.Walk(rt.r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, Route{Method: method, Pattern: route})
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Group creates a route group rooted at the provided prefix.
func (rt *Router) Group(prefix string) *Group {
	return &Group{parent: rt.r, prefix: prefix}
}

// Group represents a group of routes under a common prefix.
type Group struct {
	parent chi.Router
	prefix string
}

// With returns a new Group that applies the provided middleware to all
// routes registered through it.
func (g *Group) With(mws ...func(http.Handler) http.Handler) *Group {
	return &Group{parent: g.parent.With(mws...), prefix: g.prefix}
}

func join(prefix, p string) string {
	if prefix == "" || prefix == "/" {
		return p
	}
	if p == "" || p == "/" {
		return prefix
	}
	return path.Join(prefix, p)
}

// RouteChain allows per-route configuration after registration.
type RouteChain struct {
	mws []func(http.Handler) http.Handler
}

// Middleware adds middleware that wraps only this route. Middleware runs in
// the order given, before the handler.
//
//	group.Get("/{id}", ctrl.Show).Middleware(mw1, mw2)
func (rc *RouteChain) Middleware(mws ...func(http.Handler) http.Handler) *RouteChain {
	if rc == nil {
		return rc
	}
	rc.mws = append(rc.mws, mws...)
	return rc
}

// register mounts h on parent. chi patterns such as {id:[0-9]+} are passed
// through so the regex constrains matching before the handler runs.
func register(parent chi.Router, method, p string, h handler.Func) *RouteChain {
	rc := &RouteChain{}
	base := http.Handler(handler.Adapt(h))

	parent.Method(strings.ToUpper(method), p, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		final := base
		for i := len(rc.mws) - 1; i >= 0; i-- {
			final = rc.mws[i](final)
		}
		final.ServeHTTP(w, r)
	}))
	return rc
}

// Get registers a GET handler under the group's prefix.
func (g *Group) Get(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return register(g.parent.With(mws...), http.MethodGet, join(g.prefix, p), h)
}

// Post registers a POST handler under the group's prefix.
func (g *Group) Post(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return register(g.parent.With(mws...), http.MethodPost, join(g.prefix, p), h)
}

// Patch registers a PATCH handler under the group's prefix.
func (g *Group) Patch(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return register(g.parent.With(mws...), http.MethodPatch, join(g.prefix, p), h)
}

// Delete registers a DELETE handler under the group's prefix.
func (g *Group) Delete(p string, h handler.Func, mws ...func(http.Handler) http.Handler) *RouteChain {
	return register(g.parent.With(mws...), http.MethodDelete, join(g.prefix, p), h)
}
