package model

import (
	"math"
	"slices"
	"strings"
)

// Title sentinels swapped by ToggleFirstTitle
const (
	TitleDefault   = "제목1"
	TitleAlternate = "집에 가고 싶을 땐"
)

// TitleCount is the fixed number of titles in a TitleList
const TitleCount = 6

// TitleList is an ordered list of exactly TitleCount titles.
// Being an array, it is copied on assignment.
type TitleList [TitleCount]string

// LikeCount counts likes on the first post. It only grows.
type LikeCount int

// State holds the two state cells owned by a view
type State struct {
	Titles TitleList
	Likes  LikeCount
}

// InitialTitles returns the titles a new view starts with
func InitialTitles() TitleList {
	return TitleList{TitleDefault, "제목2", "제목3", "뭘봐", "어쩌라고", "나이스"}
}

// NewState creates the initial state of a view
func NewState() State {
	return State{Titles: InitialTitles()}
}

// ToggleFirstTitle swaps the first title between TitleDefault and TitleAlternate.
// Any value other than TitleDefault is replaced with TitleDefault.
func (s State) ToggleFirstTitle() State {
	next := s.Titles
	if next[0] == TitleDefault {
		next[0] = TitleAlternate
	} else {
		next[0] = TitleDefault
	}
	s.Titles = next
	return s
}

// SortTitles orders the titles ascending by Unicode code point.
// Equal titles keep their relative order.
func (s State) SortTitles() State {
	next := s.Titles
	slices.SortStableFunc(next[:], strings.Compare)
	s.Titles = next
	return s
}

// IncrementLike adds one like. The counter saturates instead of wrapping.
func (s State) IncrementLike() State {
	if s.Likes < math.MaxInt {
		s.Likes++
	}
	return s
}

// First returns the title shown in the first row
func (l TitleList) First() string {
	return l[0]
}

// Sorted reports whether the titles are in ascending code point order
func (l TitleList) Sorted() bool {
	return slices.IsSortedFunc(l[:], strings.Compare)
}
