package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program name and version in the palette colors.
func PrintBanner(w io.Writer, version string, p Palette) {
	fmt.Fprintf(w, "%s %s\n", p.Mother("decaytable"), p.Faint(strings.TrimSpace(version)))
}

// Palette colors tree and banner output for one terminal profile.
type Palette struct {
	profile termenv.Profile
}

// NewPalette creates a palette. termenv.Ascii yields plain text.
func NewPalette(profile termenv.Profile) Palette {
	return Palette{profile: profile}
}

// Mother styles the root of a chain.
func (p Palette) Mother(s string) string {
	return p.style(s, "#818cf8", true)
}

// Decaying styles a particle expanded further down the tree.
func (p Palette) Decaying(s string) string {
	return p.style(s, "#c084fc", false)
}

// Final styles a final-state particle.
func (p Palette) Final(s string) string {
	return p.style(s, "#34d399", false)
}

// Faint styles tree guides and annotations.
func (p Palette) Faint(s string) string {
	if p.profile == termenv.Ascii {
		return s
	}
	return p.profile.String(s).Faint().String()
}

func (p Palette) style(s, color string, bold bool) string {
	if p.profile == termenv.Ascii {
		return s
	}
	st := p.profile.String(s).Foreground(p.profile.Color(color))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
