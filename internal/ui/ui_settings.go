package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/server"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	themeSelect *widget.Select
	entryPort   *NumericalEntry
	urlEntry    *widget.Entry
}

// validatePort maps port errors to translated messages.
func (app *GyegiApp) validatePort(s string) error {
	switch err := server.ValidatePort(s); {
	case err == nil:
		return nil
	case errors.Is(err, server.ErrPortRequired):
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	case errors.Is(err, server.ErrPortNumber):
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	default:
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
}

// validateDatasetURL accepts an empty value, meaning the embedded dataset.
func validateDatasetURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS) || u.Host == "" {
		return errors.New(config.ErrInvalidURL)
	}
	return nil
}

// ShowSettingsWindow displays the configuration window. Only one settings
// window exists at a time.
func (app *GyegiApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemTheme := widget.NewFormItem(app.GetMsg(config.TKeyLblTheme), sw.themeSelect)
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)
	itemURL := widget.NewFormItem(app.GetMsg(config.TKeyLblDatasetURL), sw.urlEntry)
	itemURL.HintText = app.GetMsg(config.TKeyHelpDatasetURL)

	form := widget.NewForm(itemLang, itemTheme, itemPort, itemURL)

	saveAction := func() {
		for _, v := range []fyne.Validatable{sw.entryPort, sw.urlEntry} {
			if err := v.Validate(); err != nil {
				dialog.ShowError(err, w)
				return
			}
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the form widgets filled from preferences.
func (app *GyegiApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.themeSelect = widget.NewSelect([]string{
		app.GetMsg(config.TKeyThemeLight),
		app.GetMsg(config.TKeyThemeDark),
	}, nil)
	if app.currentTheme() == config.ThemeDark {
		sw.themeSelect.SetSelected(app.GetMsg(config.TKeyThemeDark))
	} else {
		sw.themeSelect.SetSelected(app.GetMsg(config.TKeyThemeLight))
	}

	sw.entryPort = NewNumericalEntry()
	sw.entryPort.MaxDigits = len(fmt.Sprint(config.MaxPort))
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	sw.urlEntry = widget.NewEntry()
	sw.urlEntry.PlaceHolder = config.PlaceholderURL
	sw.urlEntry.SetText(app.Preferences.String(config.PrefDatasetURL))
	sw.urlEntry.Validator = validateDatasetURL

	return sw
}

// saveSettings persists the form and applies what can change at runtime.
// A new port takes effect on the next start.
func (app *GyegiApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSaving, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	themeName := config.ThemeLight
	if sw.themeSelect.Selected == app.GetMsg(config.TKeyThemeDark) {
		themeName = config.ThemeDark
	}

	urlChanged := app.Preferences.String(config.PrefDatasetURL) != sw.urlEntry.Text
	app.Preferences.SetString(config.PrefDatasetURL, sw.urlEntry.Text)

	app.UpdateLocalizer()
	app.refreshChrome()
	app.SetTheme(themeName)

	if urlChanged {
		app.reloadDataset()
	}
}
