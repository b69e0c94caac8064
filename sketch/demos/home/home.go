// Package home is the gallery's menu page.
package home

import (
	"fmt"
	"image/color"
	"time"

	"gallery/hal"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface"
)

const Route = "/"

var (
	background = color.RGBA{R: 0x08, G: 0x0B, B: 0x10, A: 0xFF}
	titleColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	linkColor  = color.RGBA{R: 0x88, G: 0xA6, B: 0xD6, A: 0xFF}
	hintColor  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
)

// Link is one menu entry.
type Link struct {
	Key   string
	Title string
	Route string
}

// Demo renders a static menu. It redraws only after mounting and after a
// resize.
type Demo struct {
	links []Link

	sess  *page.Session
	surf  surface.Surface
	dirty bool
	draws int
}

func New(links []Link) *Demo {
	return &Demo{links: links}
}

func (d *Demo) Route() string { return Route }
func (d *Demo) Title() string { return "Gallery" }

func (d *Demo) Mount(h *page.Host) error {
	sess, err := page.Begin(h, Route)
	if err != nil {
		return err
	}
	d.sess = sess
	d.surf = h.Surface
	d.dirty = true
	sess.Listen(hal.EventResize, func(hal.Event) { d.dirty = true })
	sess.Run(d)
	return nil
}

func (d *Demo) Unmount() {
	d.sess.End()
	d.sess = nil
}

func (d *Demo) Advance(time.Time) {}

func (d *Demo) Render() {
	if !d.dirty {
		return
	}
	d.dirty = false
	d.draws++

	s := d.surf
	surface.Reset(s)
	s.SetBackground(background)
	s.Clear(s.Bounds())

	p := geom.Vec(24, 24)
	s.DrawText(p, d.Title(), titleColor)
	p.Y += 2 * surface.LineHeight
	for _, l := range d.links {
		s.DrawText(p, fmt.Sprintf("[%s] %s  %s", l.Key, l.Title, l.Route), linkColor)
		p.Y += surface.LineHeight + 4
	}
	p.Y += surface.LineHeight
	s.DrawText(p, "h home  q quit", hintColor)
}

// Draws returns how many times the menu has been drawn.
func (d *Demo) Draws() int { return d.draws }
