package tui

// CopiedMsg reports that a hex code reached the clipboard. Sequence holds any
// escape sequence still to be written to the terminal.
type CopiedMsg struct {
	Hex      string
	Sequence string
}

// CopyFailedMsg reports a clipboard failure for a hex code.
type CopyFailedMsg struct {
	Hex string
	Err error
}

// clearBannerMsg hides the banner identified by id. Stale ids are ignored so
// an older timer cannot clear a newer banner.
type clearBannerMsg struct {
	id int
}
