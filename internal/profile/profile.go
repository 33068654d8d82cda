package profile

import "github.com/AnyUserName/textart-cli/internal/resize"

// Profile defines conversion parameters for a target display.
type Profile struct {
	Name    string
	Cols    int      // grid width in cells; 0 derives it from Rows
	Rows    int      // grid height in cells; 0 derives it from Cols
	CharMap string   // charmap preset name
	Formats []string // output formats in priority order
	Lines   bool     // emit line breaks between rows
}

// Built-in profiles.
var profiles = map[string]Profile{
	"terminal": {
		Name:    "terminal",
		Cols:    80,
		CharMap: "chars1",
		Formats: []string{"txt"},
		Lines:   true,
	},
	"terminal-color": {
		Name:    "terminal-color",
		Cols:    80,
		CharMap: "chars3",
		Formats: []string{"txt", "ans"},
		Lines:   true,
	},
	"braille": {
		Name:    "braille",
		Cols:    100,
		CharMap: "braille",
		Formats: []string{"txt", "ans"},
		Lines:   true,
	},
	"mosaic": {
		Name:    "mosaic",
		Cols:    80,
		CharMap: "mosaic",
		Formats: []string{"txt", "ans"},
		Lines:   true,
	},
	"teletext": {
		Name:    "teletext",
		Cols:    40,
		Rows:    24,
		CharMap: "teletext",
		Formats: []string{"txt"},
		Lines:   true,
	},
}

// Get returns a profile by name. Falls back to terminal if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["terminal"]
	p.Name = name // preserve requested name
	return p
}

// Resolution returns the grid for a source image, filling in whichever of
// Cols and Rows is zero from its aspect ratio.
func (p Profile) Resolution(srcW, srcH int) resize.Resolution {
	return resize.Fit(srcW, srcH, p.Cols, p.Rows)
}
