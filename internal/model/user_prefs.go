package model

import (
	"fmt"
	"strings"

	"github.com/phrazzld/recruitbook/internal/domain"
)

// Theme is the colour scheme of the interface.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

// ParseTheme parses a theme name case-insensitively.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToUpper(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: theme must be LIGHT or DARK, got %q", domain.ErrValidation, raw)
	}
}

// Default preference values.
const (
	DefaultWindowWidth           = 740.0
	DefaultWindowHeight          = 600.0
	DefaultAddressBookFilePath   = "data/addressbook.json"
	DefaultScheduleBoardFilePath = "data/scheduleboard.json"
)

// Point is a window position in screen coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GuiSettings holds window geometry and theme.
// A nil WindowCoordinates means the window is centred by the presentation layer.
type GuiSettings struct {
	WindowWidth       float64 `json:"windowWidth"`
	WindowHeight      float64 `json:"windowHeight"`
	WindowCoordinates *Point  `json:"windowCoordinates,omitempty"`
	Theme             Theme   `json:"theme"`
}

// DefaultGuiSettings returns the settings used when none are stored.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		Theme:        ThemeLight,
	}
}

// NewGuiSettings returns settings for a positioned window.
func NewGuiSettings(width, height float64, x, y int, theme Theme) GuiSettings {
	return GuiSettings{
		WindowWidth:       width,
		WindowHeight:      height,
		WindowCoordinates: &Point{X: x, Y: y},
		Theme:             theme,
	}
}

// Clone returns a deep copy of g.
func (g GuiSettings) Clone() GuiSettings {
	if g.WindowCoordinates != nil {
		p := *g.WindowCoordinates
		g.WindowCoordinates = &p
	}
	return g
}

// Equal reports whether both settings describe the same window.
func (g GuiSettings) Equal(o GuiSettings) bool {
	if g.WindowWidth != o.WindowWidth || g.WindowHeight != o.WindowHeight || g.Theme != o.Theme {
		return false
	}
	if g.WindowCoordinates == nil || o.WindowCoordinates == nil {
		return g.WindowCoordinates == nil && o.WindowCoordinates == nil
	}
	return *g.WindowCoordinates == *o.WindowCoordinates
}

// String describes the settings for logs.
func (g GuiSettings) String() string {
	pos := "centred"
	if g.WindowCoordinates != nil {
		pos = fmt.Sprintf("(%d,%d)", g.WindowCoordinates.X, g.WindowCoordinates.Y)
	}
	return fmt.Sprintf("Width: %g, Height: %g, Position: %s, Theme: %s", g.WindowWidth, g.WindowHeight, pos, g.Theme)
}

// UserPrefs holds the user's preferences. It is a plain value; ModelManager
// stores and hands out copies.
type UserPrefs struct {
	GuiSettings           GuiSettings `json:"guiSettings"`
	AddressBookFilePath   string      `json:"addressBookFilePath"`
	ScheduleBoardFilePath string      `json:"scheduleBoardFilePath"`
}

// DefaultUserPrefs returns the preferences used on first launch.
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		GuiSettings:           DefaultGuiSettings(),
		AddressBookFilePath:   DefaultAddressBookFilePath,
		ScheduleBoardFilePath: DefaultScheduleBoardFilePath,
	}
}

// Clone returns a deep copy of p.
func (p UserPrefs) Clone() UserPrefs {
	p.GuiSettings = p.GuiSettings.Clone()
	return p
}

// Validate checks that every required preference is present.
func (p UserPrefs) Validate() error {
	switch {
	case p.AddressBookFilePath == "":
		return domain.NewMissingFieldError("User prefs", "AddressBookFilePath")
	case p.ScheduleBoardFilePath == "":
		return domain.NewMissingFieldError("User prefs", "ScheduleBoardFilePath")
	}
	if _, err := ParseTheme(string(p.GuiSettings.Theme)); err != nil {
		return err
	}
	return nil
}

// Equal reports whether both preference sets are identical.
func (p UserPrefs) Equal(o UserPrefs) bool {
	return p.GuiSettings.Equal(o.GuiSettings) &&
		p.AddressBookFilePath == o.AddressBookFilePath &&
		p.ScheduleBoardFilePath == o.ScheduleBoardFilePath
}

// String describes the preferences for logs.
func (p UserPrefs) String() string {
	return fmt.Sprintf("Gui Settings : %s\nLocal data file location : %s\nSchedule data file location : %s",
		p.GuiSettings, p.AddressBookFilePath, p.ScheduleBoardFilePath)
}
