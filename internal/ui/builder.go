package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blog-demo/internal/render"
)

// textStyle is inherited from a node by its descendants
type textStyle struct {
	color  fyne.ThemeColorName
	size   fyne.ThemeSizeName
	bold   bool
	inline bool
}

// builder turns a render tree into Fyne canvas objects
type builder struct {
	theme   fyne.Theme
	variant fyne.ThemeVariant
	onTap   func(render.Trigger)

	// buttons bound during the last build, by trigger
	buttons map[render.Trigger]*widget.Button
}

func newBuilder(th fyne.Theme, variant fyne.ThemeVariant, onTap func(render.Trigger)) *builder {
	return &builder{
		theme:   th,
		variant: variant,
		onTap:   onTap,
		buttons: make(map[render.Trigger]*widget.Button),
	}
}

// Build converts the page tree, replacing previously bound buttons
func (b *builder) Build(page *render.Node) fyne.CanvasObject {
	b.buttons = make(map[render.Trigger]*widget.Button)
	return b.build(page, textStyle{color: theme.ColorNameForeground, size: theme.SizeNameText})
}

func (b *builder) build(n *render.Node, st textStyle) fyne.CanvasObject {
	switch n.Kind {
	case render.KindBox:
		if n.Class == render.HeaderClass {
			st.color = ColorNameHeaderForeground
			return b.header(container.NewVBox(b.children(n, st)...))
		}
		return container.NewVBox(b.children(n, st)...)
	case render.KindRow:
		return container.NewHBox(b.children(n, st)...)
	case render.KindHeading:
		st.size = headingSize(n.Level)
		st.bold = true
		st.inline = true
		if len(n.Children) == 1 {
			return b.build(n.Children[0], st)
		}
		return container.NewHBox(b.children(n, st)...)
	case render.KindParagraph:
		return b.text(n.Text, n.Style, st)
	case render.KindText:
		return b.text(n.Text, n.Style, st)
	case render.KindButton:
		return b.button(n, st)
	case render.KindSeparator:
		return widget.NewSeparator()
	}

	return container.NewVBox()
}

func (b *builder) children(n *render.Node, st textStyle) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(n.Children))
	for _, c := range n.Children {
		objects = append(objects, b.build(c, st))
	}
	return objects
}

func (b *builder) header(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(b.theme.Color(ColorNameHeaderBackground, b.variant))
	bg.CornerRadius = HeaderCornerRad
	bg.SetMinSize(fyne.NewSize(HeaderMinWidth, 0))
	return container.NewStack(bg, container.NewPadded(content))
}

func (b *builder) text(s string, style render.Style, st textStyle) *canvas.Text {
	t := canvas.NewText(s, styleColor(b.theme, b.variant, style.Color, st.color))
	t.TextSize = b.theme.Size(st.size)
	if style.FontSize > 0 {
		t.TextSize = style.FontSize
	}
	t.TextStyle = fyne.TextStyle{Bold: st.bold}
	return t
}

func (b *builder) button(n *render.Node, st textStyle) *widget.Button {
	trigger := n.Trigger
	btn := widget.NewButton(n.Text, func() {
		b.onTap(trigger)
	})
	if st.inline {
		btn.Importance = widget.LowImportance
	}
	if trigger != render.TriggerNone {
		b.buttons[trigger] = btn
	}
	return btn
}

func headingSize(level int) fyne.ThemeSizeName {
	switch level {
	case HeadingLevelTitle:
		return theme.SizeNameHeadingText
	case HeadingLevelSubtitle:
		return theme.SizeNameSubHeadingText
	default:
		return theme.SizeNameText
	}
}
