package main

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
)

// yankValue copies the current value to the system clipboard and returns a
// status line for the footer. Clipboard access fails on headless terminals;
// that is reported, not fatal.
func (m model) yankValue() string {
	text := strconv.Itoa(m.widget.Value())
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Sprintf("clipboard unavailable: %v", err)
	}
	return fmt.Sprintf("copied %s", text)
}
