package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	AppID    = "com.ytget.blog-demo"
	AppName  = "Blog"
	AppTitle = "Blog Demo"
)

// Heading levels mapped to theme text sizes
const (
	HeadingLevelTitle    = 1
	HeadingLevelSubtitle = 2
)

// Layout sizing
const (
	HeaderMinWidth  float32 = 320
	HeaderCornerRad float32 = 4
)
