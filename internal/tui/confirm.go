package tui

type confirmModel struct {
	site string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.site + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
