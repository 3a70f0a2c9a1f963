package render

import "strings"

// Kind is the node type discriminator
type Kind uint8

const (
	KindBox       Kind = iota // grouping block
	KindRow                   // inline grouping
	KindHeading               // heading, level in Node.Level
	KindParagraph             // caption line
	KindText                  // inline text
	KindButton                // clickable trigger
	KindSeparator             // horizontal rule
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindRow:
		return "Row"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindText:
		return "Text"
	case KindButton:
		return "Button"
	case KindSeparator:
		return "Separator"
	default:
		return "Unknown"
	}
}

// Trigger names a user action bound to a node
type Trigger string

const (
	TriggerNone        Trigger = ""
	TriggerToggleTitle Trigger = "toggle-title"
	TriggerSortTitles  Trigger = "sort-titles"
	TriggerLike        Trigger = "like"
)

// Color names understood by the UI theme
type Color string

const (
	ColorDefault Color = ""
	ColorRed     Color = "red"
)

// Style holds the inline styling of a node
type Style struct {
	Color    Color
	FontSize float32 // 0 means theme default
}

// Node is one element of the display tree.
type Node struct {
	Kind     Kind
	Level    int    // heading level, 1-6
	Class    string // presentational class, e.g. "black-box"
	Text     string // for text-bearing kinds
	Style    Style
	Trigger  Trigger // for KindButton
	Children []*Node
}

// Content returns the concatenated text of the node and its descendants.
func (n *Node) Content() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeContent(&b)
	return b.String()
}

func (n *Node) writeContent(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.writeContent(b)
	}
}

// Walk visits the node and its descendants depth first, in document order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node bound to trigger, or nil.
func (n *Node) Find(trigger Trigger) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Kind == KindButton && c.Trigger == trigger {
			found = c
			return false
		}
		return true
	})
	return found
}

// Triggers lists the triggers bound in the tree, in document order.
func (n *Node) Triggers() []Trigger {
	var triggers []Trigger
	n.Walk(func(c *Node) bool {
		if c.Kind == KindButton && c.Trigger != TriggerNone {
			triggers = append(triggers, c.Trigger)
		}
		return true
	})
	return triggers
}

// Equal reports whether two trees are structurally identical.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Level != o.Level || n.Class != o.Class ||
		n.Text != o.Text || n.Style != o.Style || n.Trigger != o.Trigger ||
		len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
