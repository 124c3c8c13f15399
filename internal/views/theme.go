package views

import "github.com/charmbracelet/lipgloss"

// Theme carries the colors one palette contributes to the chrome. Palettes
// come in a light and a dark variant.
type Theme struct {
	Name    string
	Header  lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

type palette struct {
	light Theme
	dark  Theme
}

var palettes = map[string]palette{
	"sage": {
		light: Theme{Name: "sage", Header: "28", Accent: "35", Border: "65", Muted: "245", Error: "160", Success: "28"},
		dark:  Theme{Name: "sage", Header: "114", Accent: "120", Border: "65", Muted: "244", Error: "203", Success: "114"},
	},
	"clay": {
		light: Theme{Name: "clay", Header: "130", Accent: "173", Border: "137", Muted: "245", Error: "160", Success: "28"},
		dark:  Theme{Name: "clay", Header: "180", Accent: "216", Border: "137", Muted: "244", Error: "203", Success: "114"},
	},
	"ocean": {
		light: Theme{Name: "ocean", Header: "25", Accent: "32", Border: "31", Muted: "245", Error: "160", Success: "28"},
		dark:  Theme{Name: "ocean", Header: "39", Accent: "45", Border: "31", Muted: "244", Error: "203", Success: "114"},
	},
	"sand": {
		light: Theme{Name: "sand", Header: "136", Accent: "179", Border: "143", Muted: "245", Error: "160", Success: "28"},
		dark:  Theme{Name: "sand", Header: "186", Accent: "222", Border: "143", Muted: "244", Error: "203", Success: "114"},
	},
	"rose": {
		light: Theme{Name: "rose", Header: "161", Accent: "168", Border: "132", Muted: "245", Error: "160", Success: "28"},
		dark:  Theme{Name: "rose", Header: "211", Accent: "218", Border: "132", Muted: "244", Error: "203", Success: "114"},
	},
}

// ThemeByName resolves a palette; unknown names fall back to sage.
func ThemeByName(name string, dark bool) Theme {
	p, ok := palettes[name]
	if !ok {
		p = palettes["sage"]
	}
	if dark {
		return p.dark
	}
	return p.light
}
