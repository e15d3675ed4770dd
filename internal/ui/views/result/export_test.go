package result

// SetClipboardWriter swaps the clipboard writer for the duration of a test.
func SetClipboardWriter(fn func(string) error) func() {
	prev := clipboardWrite
	clipboardWrite = fn
	return func() { clipboardWrite = prev }
}

// GotoBottom scrolls the result viewport to its last line.
func (m *Model) GotoBottom() { m.viewport.GotoBottom() }
