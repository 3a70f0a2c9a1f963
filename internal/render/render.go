package render

import (
	"strconv"

	"github.com/ytget/blog-demo/internal/model"
)

// Static page content
const (
	HeaderClass   = "black-box"
	ListClass     = "list"
	HeaderTitle   = "Blog"
	Post          = "지세 맛집"
	BindingNote   = "데이터 바인딩은 중괄호"
	BindingSize   = 20
	ToggleLabel   = "제목 바꾸기"
	SortLabel     = "제목 정렬하기"
	LikeLabel     = "좋아요🤗"
	StateNote     = "state는 변동 시 자동으로 html에 반영되게 만들고 싶을 때 사용"
	FirstPostedAt = "2025.11.04.17:22:13"
)

// rowTimestamps holds the posted-at caption of each rendered row
var rowTimestamps = [...]string{FirstPostedAt, "2025.11.04.17:22:14", "2025.11.04.17:22:15"}

// Rows is the number of list rows rendered
const Rows = len(rowTimestamps)

// Render builds the display tree for s. It depends on nothing but s.
func Render(s model.State) *Node {
	return box("",
		header(),
		&Node{Kind: KindSeparator},
		&Node{Kind: KindRow, Children: []*Node{
			button(ToggleLabel, TriggerToggleTitle),
			button(SortLabel, TriggerSortTitles),
		}},
		&Node{Kind: KindSeparator},
		firstRow(s),
		row(s.Titles[1], rowTimestamps[1]),
		row(s.Titles[2], rowTimestamps[2]),
	)
}

func header() *Node {
	return box(HeaderClass,
		heading(1, text(HeaderTitle)),
		heading(2, text(Post)),
		&Node{Kind: KindParagraph, Text: BindingNote, Style: Style{Color: ColorRed, FontSize: BindingSize}},
	)
}

func firstRow(s model.State) *Node {
	return box(ListClass,
		heading(4,
			text(s.Titles.First()),
			button(LikeLabel, TriggerLike),
			text(strconv.Itoa(int(s.Likes))),
		),
		paragraph(rowTimestamps[0]),
		paragraph(StateNote),
	)
}

func row(title, postedAt string) *Node {
	return box(ListClass,
		heading(4, text(title)),
		paragraph(postedAt),
	)
}

func box(class string, children ...*Node) *Node {
	return &Node{Kind: KindBox, Class: class, Children: children}
}

func heading(level int, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Level: level, Children: children}
}

func text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

func paragraph(s string) *Node {
	return &Node{Kind: KindParagraph, Text: s}
}

func button(label string, trigger Trigger) *Node {
	return &Node{Kind: KindButton, Text: label, Trigger: trigger}
}
