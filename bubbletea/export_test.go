package bubbletea

// ClipLeft exports clipLeft for testing.
func ClipLeft(s string, width int) string {
	return clipLeft(s, width)
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}
