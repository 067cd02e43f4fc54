package render

import "github.com/gdamore/tcell/v2"

// Role identifies what a cell represents on screen
type Role int

const (
	RoleBackground Role = iota
	RoleSnake
	RoleFood
	RoleBorder
	RoleText
)

// Palette maps each role to the style it is drawn with
type Palette map[Role]tcell.Style

// DefaultPalette mirrors the classic curses pairs: red snake, yellow food,
// black-on-green border and black-on-white text, all over black
func DefaultPalette() Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Palette{
		RoleBackground: base.Foreground(tcell.ColorBlack),
		RoleSnake:      base.Foreground(tcell.ColorRed),
		RoleFood:       base.Foreground(tcell.ColorYellow),
		RoleBorder:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		RoleText:       tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

// Style returns the style for role, falling back to the terminal default
func (p Palette) Style(role Role) tcell.Style {
	if s, ok := p[role]; ok {
		return s
	}
	return tcell.StyleDefault
}
