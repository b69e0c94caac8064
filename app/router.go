package app

import (
	"errors"
	"fmt"

	"gallery/hal"
	"gallery/sketch/demos/home"
	"gallery/sketch/page"

	"go.uber.org/zap"
)

// ErrUnknownRoute is returned by Navigate for a route with no demo.
var ErrUnknownRoute = errors.New("unknown route")

// entry binds a demo to its menu keys.
type entry struct {
	demo page.Demo
	key  hal.KeyCode
	r    rune
}

// Router mounts one demo at a time on a shared host.
type Router struct {
	host    *page.Host
	log     *zap.Logger
	entries []entry
	home    *home.Demo
	current page.Demo
}

// NewRouter returns a router for the given demos. Menu keys are assigned in
// order: F1/'1', F2/'2', F3/'3'. The home page lists them.
func NewRouter(host *page.Host, log *zap.Logger, demos ...page.Demo) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	keys := []hal.KeyCode{hal.KeyF1, hal.KeyF2, hal.KeyF3}
	r := &Router{host: host, log: log}
	var links []home.Link
	for i, d := range demos {
		e := entry{demo: d, key: hal.KeyUnknown}
		if i < len(keys) {
			e.key = keys[i]
			e.r = rune('1' + i)
			links = append(links, home.Link{Key: string(e.r), Title: d.Title(), Route: d.Route()})
		}
		r.entries = append(r.entries, e)
	}
	r.home = home.New(links)
	r.entries = append(r.entries, entry{demo: r.home, key: hal.KeyHome, r: 'h'})
	return r
}

// Current returns the mounted demo, or nil.
func (r *Router) Current() page.Demo { return r.current }

// Route returns the mounted route, or "" when nothing is mounted.
func (r *Router) Route() string {
	if r.current == nil {
		return ""
	}
	return r.current.Route()
}

// Links returns the menu entries in order, home last.
func (r *Router) Links() []home.Link {
	out := make([]home.Link, 0, len(r.entries))
	for _, e := range r.entries {
		key := ""
		if e.r != 0 {
			key = string(e.r)
		}
		out = append(out, home.Link{Key: key, Title: e.demo.Title(), Route: e.demo.Route()})
	}
	return out
}

// Routes lists every known route in menu order, home last.
func (r *Router) Routes() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.demo.Route())
	}
	return out
}

// Navigate unmounts the current demo and mounts the one at route. When the
// mount fails the error is logged and the router falls back to home.
func (r *Router) Navigate(route string) error {
	d := r.lookup(route)
	if d == nil {
		return fmt.Errorf("navigate %q: %w", route, ErrUnknownRoute)
	}
	if d == r.current {
		return nil
	}
	r.unmount()

	if err := d.Mount(r.host); err != nil {
		r.log.Error("mount failed", zap.String("route", route), zap.Error(err))
		if d != r.home {
			if herr := r.home.Mount(r.host); herr == nil {
				r.current = r.home
			} else {
				r.log.Error("mount failed", zap.String("route", home.Route), zap.Error(herr))
			}
		}
		return err
	}
	r.current = d
	r.log.Info("navigated", zap.String("route", route), zap.String("title", d.Title()))
	return nil
}

// HandleKey applies navigation keys. It reports whether the key was consumed
// and whether it asks to quit.
func (r *Router) HandleKey(ev hal.Event) (handled, quit bool) {
	if ev.Kind != hal.EventKey {
		return false, false
	}
	if ev.Key == hal.KeyInterrupt || ev.Rune == 'q' {
		return true, true
	}
	if ev.Key == hal.KeyEscape {
		r.navigateLogged(home.Route)
		return true, false
	}
	for _, e := range r.entries {
		if (ev.Key != hal.KeyUnknown && ev.Key == e.key) || (ev.Rune != 0 && ev.Rune == e.r) {
			r.navigateLogged(e.demo.Route())
			return true, false
		}
	}
	return false, false
}

func (r *Router) navigateLogged(route string) {
	if err := r.Navigate(route); err != nil {
		r.log.Warn("navigation failed", zap.String("route", route), zap.Error(err))
	}
}

func (r *Router) lookup(route string) page.Demo {
	for _, e := range r.entries {
		if e.demo.Route() == route {
			return e.demo
		}
	}
	return nil
}

func (r *Router) unmount() {
	if r.current == nil {
		return
	}
	r.current.Unmount()
	r.current = nil
}

// Close unmounts the current demo.
func (r *Router) Close() {
	r.unmount()
}
