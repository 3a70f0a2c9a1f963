package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/blog-demo/internal/model"
	"github.com/ytget/blog-demo/internal/render"
)

// Transition produces the next state from the current one
type Transition func(model.State) model.State

// View is the blog page. It owns its state for its whole lifetime and
// re-renders synchronously after every dispatched trigger.
type View struct {
	id       string
	state    model.State
	handlers map[render.Trigger]Transition
	closed   bool

	page    *render.Node
	root    *fyne.Container
	builder *builder
}

// NewView creates a view with fresh initial state, styled with th
func NewView(th fyne.Theme) *View {
	v := &View{
		id:       generateViewID(),
		state:    model.NewState(),
		handlers: make(map[render.Trigger]Transition),
		root:     container.NewVBox(),
	}
	v.builder = newBuilder(th, themeVariant(), func(trigger render.Trigger) {
		v.Dispatch(trigger)
	})

	v.Handle(render.TriggerToggleTitle, model.State.ToggleFirstTitle)
	v.Handle(render.TriggerSortTitles, model.State.SortTitles)
	v.Handle(render.TriggerLike, model.State.IncrementLike)

	v.rerender()
	log.Printf("View %s created", v.id)
	return v
}

// Handle registers the transition run when trigger fires, replacing any previous one
func (v *View) Handle(trigger render.Trigger, fn Transition) {
	v.handlers[trigger] = fn
}

// Dispatch runs the transition bound to trigger and re-renders.
// It reports whether a transition ran.
func (v *View) Dispatch(trigger render.Trigger) bool {
	if v.closed {
		log.Printf("View %s: dispatch %s after close ignored", v.id, trigger)
		return false
	}

	fn, ok := v.handlers[trigger]
	if !ok {
		log.Printf("View %s: no handler for trigger %q", v.id, trigger)
		return false
	}

	v.state = fn(v.state)
	log.Printf("View %s: %s -> first=%q likes=%d", v.id, trigger, v.state.Titles.First(), v.state.Likes)
	v.rerender()
	return true
}

// State returns a copy of the current state
func (v *View) State() model.State {
	return v.state
}

// Page returns the display tree of the last render
func (v *View) Page() *render.Node {
	return v.page
}

// Content returns the canvas object holding the rendered page
func (v *View) Content() fyne.CanvasObject {
	return v.root
}

// Button returns the button bound to trigger in the current render
func (v *View) Button(trigger render.Trigger) (*widget.Button, bool) {
	btn, ok := v.builder.buttons[trigger]
	return btn, ok
}

// ID returns the view instance id
func (v *View) ID() string {
	return v.id
}

// Close discards the view state. Later dispatches are ignored.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.state = model.State{}
	v.handlers = nil
	log.Printf("View %s closed", v.id)
}

func (v *View) rerender() {
	v.page = render.Render(v.state)
	v.root.Objects = []fyne.CanvasObject{v.builder.Build(v.page)}
	v.root.Refresh()
}

// generateViewID generates a unique view ID using UUID v7
func generateViewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("view-%d", time.Now().UnixNano())
	}
	return id.String()
}

func themeVariant() fyne.ThemeVariant {
	if app := fyne.CurrentApp(); app != nil {
		return app.Settings().ThemeVariant()
	}
	return theme.VariantLight
}
