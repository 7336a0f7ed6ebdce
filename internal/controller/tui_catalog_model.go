package controller

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// catalogModel renders the registered properties as a static list.
type catalogModel struct {
	entries []CatalogEntry
}

func newCatalogModel(entries []CatalogEntry) catalogModel {
	return catalogModel{entries: entries}
}

func (m catalogModel) Init() tea.Cmd {
	return nil
}

func (m catalogModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

func (m catalogModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%d registered properties", len(m.entries))))
	b.WriteString("\n\n")

	for _, entry := range m.entries {
		b.WriteString(nameStyle.Render(entry.Name))
		b.WriteString(" ")
		b.WriteString(counterStyle.Render(entry.Desc))
		b.WriteString("\n")
	}

	return b.String()
}
