package fynegui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"go-toolfx/internal/core/config"
)

// ToolTheme pins the launched window to a light or dark palette regardless
// of the desktop's preference.
type ToolTheme struct {
	variant fyne.ThemeVariant
}

// NewToolTheme returns the theme for a configured name, or nil for
// "system" and unknown names so the Fyne default applies.
func NewToolTheme(name string) fyne.Theme {
	switch name {
	case config.ThemeDark:
		return &ToolTheme{variant: theme.VariantDark}
	case config.ThemeLight:
		return &ToolTheme{variant: theme.VariantLight}
	default:
		return nil
	}
}

func (t *ToolTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

// Color ignores the requested variant in favour of the pinned one.
func (t *ToolTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if t.variant == theme.VariantDark {
		if c, ok := darkPalette[name]; ok {
			return c
		}
	} else if c, ok := lightPalette[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

var darkPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:      color.NRGBA{R: 30, G: 32, B: 40, A: 255},
	theme.ColorNameForeground:      color.NRGBA{R: 236, G: 238, B: 244, A: 255},
	theme.ColorNameButton:          color.NRGBA{R: 52, G: 58, B: 74, A: 255},
	theme.ColorNamePrimary:         color.NRGBA{R: 86, G: 156, B: 214, A: 255},
	theme.ColorNameHover:           color.NRGBA{R: 64, G: 72, B: 92, A: 255},
	theme.ColorNameFocus:           color.NRGBA{R: 86, G: 156, B: 214, A: 180},
	theme.ColorNameSelection:       color.NRGBA{R: 86, G: 156, B: 214, A: 90},
	theme.ColorNameError:           color.NRGBA{R: 240, G: 98, B: 98, A: 255},
	theme.ColorNameSuccess:         color.NRGBA{R: 102, G: 204, B: 136, A: 255},
	theme.ColorNameWarning:         color.NRGBA{R: 240, G: 180, B: 90, A: 255},
	theme.ColorNameInputBackground: color.NRGBA{R: 40, G: 43, B: 54, A: 255},
	theme.ColorNamePlaceHolder:     color.NRGBA{R: 128, G: 136, B: 160, A: 255},
}

var lightPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:      color.NRGBA{R: 248, G: 249, B: 251, A: 255},
	theme.ColorNameForeground:      color.NRGBA{R: 33, G: 37, B: 48, A: 255},
	theme.ColorNameButton:          color.NRGBA{R: 232, G: 235, B: 241, A: 255},
	theme.ColorNamePrimary:         color.NRGBA{R: 37, G: 99, B: 176, A: 255},
	theme.ColorNameHover:           color.NRGBA{R: 218, G: 224, B: 234, A: 255},
	theme.ColorNameFocus:           color.NRGBA{R: 37, G: 99, B: 176, A: 180},
	theme.ColorNameSelection:       color.NRGBA{R: 37, G: 99, B: 176, A: 60},
	theme.ColorNameError:           color.NRGBA{R: 200, G: 40, B: 40, A: 255},
	theme.ColorNameSuccess:         color.NRGBA{R: 30, G: 140, B: 70, A: 255},
	theme.ColorNameWarning:         color.NRGBA{R: 200, G: 120, B: 20, A: 255},
	theme.ColorNameInputBackground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	theme.ColorNamePlaceHolder:     color.NRGBA{R: 130, G: 136, B: 150, A: 255},
}

func (t *ToolTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *ToolTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *ToolTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInputBorder:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
