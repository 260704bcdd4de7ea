// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package browser

import (
	"github.com/toeirei/kvbrowse/internal/logging"
	"github.com/toeirei/kvbrowse/internal/pagestore"
)

// PageSource is the subset of *pagestore.Store the controller drives.
type PageSource interface {
	KeyCount() int
	GetPage(pageIndex, pageSize int) (pagestore.Page, error)
	Close() error
}

// Frame is everything a renderer needs for one redraw. When Err is set the
// page could not be read and Page holds no rows.
type Frame struct {
	Page       pagestore.Page
	PageNumber int
	PageTotal  int
	Err        error
}

// RenderFunc receives each frame to draw.
type RenderFunc func(Frame)

// Controller applies events to a State, fetching pages as needed. It is
// not safe for concurrent use; events are handled one at a time.
type Controller struct {
	src    PageSource
	state  State
	render RenderFunc
	done   bool
}

// New creates a controller positioned on page 0. Nothing is loaded until
// Start is called.
func New(src PageSource, pageSize int, render RenderFunc) (*Controller, error) {
	if pageSize < 1 {
		return nil, pagestore.ErrInvalidPageSize
	}
	if render == nil {
		render = func(Frame) {}
	}
	keys := src.KeyCount()
	return &Controller{
		src:    src,
		render: render,
		state: State{
			PageSize:  pageSize,
			KeyCount:  keys,
			PageCount: pagestore.PageCount(keys, pageSize),
		},
	}, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Done reports whether Quit has been handled.
func (c *Controller) Done() bool { return c.done }

// Start loads and renders the initial page.
func (c *Controller) Start() {
	c.load(c.state)
}

// Handle applies one event. It returns true once the session has ended.
func (c *Controller) Handle(ev Event) bool {
	if c.done {
		return true
	}
	next, cmd := Transition(c.state, ev)
	switch cmd.Kind {
	case Load:
		c.load(next)
	case Exit:
		c.quit()
	}
	return c.done
}

// load fetches the page for next. The state only advances when the read
// succeeds; a failure is rendered as an error frame for the current page.
func (c *Controller) load(next State) {
	page, err := c.src.GetPage(next.PageIndex, next.PageSize)
	if err != nil {
		logging.Warnf("page %d: %v", next.PageIndex+1, err)
		c.render(Frame{
			Page:       pagestore.Page{Index: c.state.PageIndex, KeyCount: c.state.KeyCount, PageCount: c.state.PageCount},
			PageNumber: c.state.PageIndex + 1,
			PageTotal:  c.state.PageCount,
			Err:        err,
		})
		return
	}
	c.state = next
	c.render(Frame{
		Page:       page,
		PageNumber: next.PageIndex + 1,
		PageTotal:  next.PageCount,
	})
}

func (c *Controller) quit() {
	c.done = true
	if err := c.src.Close(); err != nil {
		logging.Warnf("closing store: %v", err)
	}
}

// Close ends the session without an event, for abnormal exits. It is safe
// to call after Quit.
func (c *Controller) Close() {
	if !c.done {
		c.quit()
	}
}
