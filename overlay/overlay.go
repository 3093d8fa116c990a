package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen region in terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// -------------------- DOCUMENT --------------------

// Document is the program-wide pointer event registry. The update loop
// dispatches every mouse message to it before any other handling.
type Document struct {
	next      int
	listeners map[int]func(tea.MouseMsg)
	order     []int
}

// NewDocument creates an empty registry
func NewDocument() *Document {
	return &Document{listeners: make(map[int]func(tea.MouseMsg))}
}

// Listen registers fn and returns the function that removes it. Calling
// the release function more than once is harmless.
func (d *Document) Listen(fn func(tea.MouseMsg)) (release func()) {
	d.next++
	id := d.next
	d.listeners[id] = fn
	d.order = append(d.order, id)

	return func() {
		if _, ok := d.listeners[id]; !ok {
			return
		}
		delete(d.listeners, id)
		for i, v := range d.order {
			if v == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers msg to the listeners registered at call time. A
// listener released by an earlier one during the same dispatch is skipped.
func (d *Document) Dispatch(msg tea.MouseMsg) {
	ids := append([]int(nil), d.order...)
	for _, id := range ids {
		if fn, ok := d.listeners[id]; ok {
			fn(msg)
		}
	}
}

// Len returns the number of live listeners
func (d *Document) Len() int { return len(d.listeners) }

// -------------------- OVERLAY --------------------

// Overlay is a floating surface that closes on any press outside its
// bounds. It holds no business data.
type Overlay struct {
	name    string
	doc     *Document
	open    bool
	bounds  []Rect
	release func()
	closed  int
	onClose func()
}

// New creates a closed overlay bound to doc
func New(doc *Document, name string) *Overlay {
	return &Overlay{name: name, doc: doc}
}

// OnClose sets a hook run after every close transition
func (o *Overlay) OnClose(fn func()) { o.onClose = fn }

func (o *Overlay) Name() string { return o.name }
func (o *Overlay) IsOpen() bool { return o.open }

// Closed counts close transitions since creation
func (o *Overlay) Closed() int { return o.closed }

// Open shows the overlay and starts listening for outside presses
func (o *Overlay) Open() {
	if o.open {
		return
	}
	o.open = true
	o.release = o.doc.Listen(o.handle)
}

// Close hides the overlay and stops listening. Closing a closed overlay
// does nothing.
func (o *Overlay) Close() {
	if !o.open {
		return
	}
	o.open = false
	if o.release != nil {
		o.release()
		o.release = nil
	}
	o.bounds = nil
	o.closed++
	if o.onClose != nil {
		o.onClose()
	}
}

// Toggle opens a closed overlay and closes an open one
func (o *Overlay) Toggle() {
	if o.open {
		o.Close()
		return
	}
	o.Open()
}

// SetBounds replaces the rendered regions that count as inside. It is
// called on every render while the overlay is open.
func (o *Overlay) SetBounds(rects ...Rect) {
	o.bounds = append(o.bounds[:0], rects...)
}

// Bounds returns the regions set by the last render
func (o *Overlay) Bounds() []Rect { return o.bounds }

// Inside reports whether (x, y) falls in any of the overlay's regions
func (o *Overlay) Inside(x, y int) bool {
	for _, r := range o.bounds {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

func (o *Overlay) handle(msg tea.MouseMsg) {
	if !o.open || !isPress(msg) {
		return
	}
	if o.Inside(msg.X, msg.Y) {
		return
	}
	o.Close()
}

func isPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonNone, tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return false
	}
	return true
}
