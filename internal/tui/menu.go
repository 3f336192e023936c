package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuTitle heads the options menu.
const MenuTitle = "Options Menu"

// MenuItems lists the menu commands in display order. The session loop
// accepts each of them in any letter case.
var MenuItems = []string{"Chat", "LoadFile", "Help", "Options", "Exit"}

// RenderMenu renders the options menu as a bordered box.
func RenderMenu() string {
	items := make([]string, 0, len(MenuItems))
	for _, item := range MenuItems {
		items = append(items, menuItemStyle.Render("-"+item))
	}

	box := menuBoxStyle.Render(strings.Join(items, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(MenuTitle), box)
}
