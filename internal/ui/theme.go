package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gyegi/calendar/internal/config"
)

// variantTheme pins the default theme to one variant regardless of the
// system setting.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// currentTheme returns the stored theme name, or the default when unset.
func (app *GyegiApp) currentTheme() string {
	if app.Preferences.String(config.PrefTheme) == config.ThemeDark {
		return config.ThemeDark
	}
	return config.DefaultTheme
}

func (app *GyegiApp) applyTheme(name string) {
	variant := theme.VariantLight
	if name == config.ThemeDark {
		variant = theme.VariantDark
	}
	app.App.Settings().SetTheme(variantTheme{Theme: theme.DefaultTheme(), variant: variant})
	slog.Debug(config.MsgThemeApplied,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTheme, name,
	)
}

// SetTheme stores and applies a theme.
func (app *GyegiApp) SetTheme(name string) {
	app.Preferences.SetString(config.PrefTheme, name)
	app.applyTheme(name)
	if app.Nav != nil {
		app.Nav.Refresh()
	}
}

// ToggleTheme switches between light and dark.
func (app *GyegiApp) ToggleTheme() {
	if app.currentTheme() == config.ThemeDark {
		app.SetTheme(config.ThemeLight)
		return
	}
	app.SetTheme(config.ThemeDark)
}

// askThemeOnFirstRun lets the user pick a theme when none was stored yet.
func (app *GyegiApp) askThemeOnFirstRun() {
	if app.Preferences.String(config.PrefTheme) != "" {
		return
	}
	dialog.ShowCustomConfirm(
		app.GetMsg(config.TKeyThemeTitle),
		app.GetMsg(config.TKeyThemeDark),
		app.GetMsg(config.TKeyThemeLight),
		widget.NewLabel(app.GetMsg(config.TKeyThemePrompt)),
		func(dark bool) {
			if dark {
				app.SetTheme(config.ThemeDark)
			} else {
				app.SetTheme(config.ThemeLight)
			}
		},
		app.MainWindow,
	)
}
