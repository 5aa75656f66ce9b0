// Package ui is the desktop surface of the calendar. GyegiApp renders the
// navigation controller's descriptors with fyne and hosts the suggestion,
// admin and settings windows.
package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/gyegi/calendar/internal/admin"
	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/export"
	"github.com/gyegi/calendar/internal/lessonplan"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/server"
	"github.com/gyegi/calendar/internal/storage/prefs"
	"github.com/gyegi/calendar/internal/suggestion"
	"github.com/gyegi/calendar/internal/view"
)

//go:embed Icon.png
var appIconData []byte

// GyegiApp holds the UI state. All fields are touched from the fyne main
// goroutine only; background work hands results back with fyne.Do.
type GyegiApp struct {
	App         fyne.App
	MainWindow  fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server  *server.CalendarServer
	Fetcher dataset.Fetcher
	Dataset *dataset.Dataset
	Clock   calendar.Clock

	Nav         *nav.Controller
	Suggestions *suggestion.Store
	Admin       *admin.Session
	Planner     lessonplan.Generator
	Printer     lessonplan.Printer

	SupportedLanguages []string
	// InitialMode is the first view shown. Zero is the year view.
	InitialMode view.Mode

	model          *view.Model
	header         *widget.Label
	body           *fyne.Container
	btnYear        *widget.Button
	btnMonth       *widget.Button
	btnPrev        *widget.Button
	btnNext        *widget.Button
	btnTheme       *widget.Button
	btnSuggest     *widget.Button
	btnAdmin       *widget.Button
	btnSettings    *widget.Button
	lastHint       nav.Transition
	settingsWindow fyne.Window
	adminWindow    fyne.Window
}

// NewGyegiApp wires the application around an already loaded dataset.
func NewGyegiApp(a fyne.App, ctx context.Context, srv *server.CalendarServer, ds *dataset.Dataset, fetcher dataset.Fetcher) *GyegiApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &GyegiApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Fetcher:            fetcher,
		Dataset:            ds,
		Clock:              calendar.RealClock{},
		Admin:              admin.NewSession(admin.NewGate(admin.ResolvePassword())),
		Planner:            lessonplan.NewSimulatedGenerator(),
		SupportedLanguages: config.SupportedLanguages,
	}
	app.Printer = &lessonplan.FilePrinter{Open: app.openFile}
	return app
}

// Run starts the feed server and blocks in the fyne event loop.
func (app *GyegiApp) Run() {
	app.SetupI18n()
	app.applyTheme(app.currentTheme())
	app.BuildMainWindow()

	if err := app.Server.Publish(app.Ctx, export.NewBuilder(), app.Dataset.Store().ActiveRecords()); err != nil {
		slog.Error(config.ErrICalEncode, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
	}
	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.MainWindow.Show()
	app.askThemeOnFirstRun()
	app.App.Run()
}

// BuildMainWindow creates the main window and renders the initial state.
// SetupI18n must have run.
func (app *GyegiApp) BuildMainWindow() {
	app.model = view.NewModel(app.Dataset.Store(), app.Dataset, app.Clock)
	app.Suggestions = suggestion.NewStore(prefs.New(app.Preferences), app.Clock)
	app.Nav = nav.NewController(app.model, app, nav.Options{
		Year:        app.Dataset.DefaultYear,
		InitialMode: app.InitialMode,
		Clock:       app.Clock,
	})

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.MainWindow = w
	w.SetMaster()
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))

	app.header = widget.NewLabel("")
	app.header.TextStyle = fyne.TextStyle{Bold: true}

	app.btnYear = widget.NewButtonWithIcon("", theme.GridIcon(), func() {
		app.dispatch(nav.SwitchView{Mode: view.ModeYear})
	})
	app.btnMonth = widget.NewButtonWithIcon("", theme.ListIcon(), func() {
		app.dispatch(nav.SwitchView{Mode: view.ModeMonth})
	})
	app.btnPrev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		app.dispatch(nav.StepMonth{Offset: -1})
	})
	app.btnNext = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		app.dispatch(nav.StepMonth{Offset: 1})
	})
	app.btnTheme = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), app.ToggleTheme)
	app.btnSuggest = widget.NewButtonWithIcon("", theme.MailComposeIcon(), app.ShowSuggestionForm)
	app.btnAdmin = widget.NewButtonWithIcon("", theme.AccountIcon(), app.ShowAdminLogin)
	app.btnSettings = widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(app.btnYear, app.btnMonth, app.btnPrev, app.btnNext),
		container.NewHBox(app.btnTheme, app.btnSuggest, app.btnAdmin, app.btnSettings),
		app.header,
	)

	app.body = container.NewStack()
	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, app.body))

	app.refreshChrome()
	app.Nav.Refresh()
}

// refreshChrome re-applies every translated label outside the calendar.
func (app *GyegiApp) refreshChrome() {
	app.MainWindow.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.btnYear.SetText(app.GetMsg(config.TKeyBtnYear))
	app.btnMonth.SetText(app.GetMsg(config.TKeyBtnMonth))
	app.btnPrev.SetText(app.GetMsg(config.TKeyBtnPrevMonth))
	app.btnNext.SetText(app.GetMsg(config.TKeyBtnNextMonth))
	app.btnTheme.SetText(app.GetMsg(config.TKeyBtnTheme))
	app.btnSuggest.SetText(app.GetMsg(config.TKeyBtnSuggest))
	app.btnAdmin.SetText(app.GetMsg(config.TKeyBtnAdmin))
	app.btnSettings.SetText(app.GetMsg(config.TKeyBtnSettings))
	app.header.SetText(app.todayText())
}

// todayText formats the header date in the current language.
func (app *GyegiApp) todayText() string {
	now := app.Clock.Now()
	return app.GetMsgWith(config.TKeyHeaderToday, map[string]interface{}{
		"Year":    now.Year(),
		"Month":   int(now.Month()),
		"Day":     now.Day(),
		"Weekday": app.GetMsg(weekdayKeys[now.Weekday()]),
	})
}

func (app *GyegiApp) dispatch(in nav.Intent) {
	if err := app.Nav.Dispatch(in); err != nil {
		slog.Warn(config.ErrUnknownIntent, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
	}
}

// Render implements nav.Sink. The calendar area is replaced, never appended to.
func (app *GyegiApp) Render(d view.Descriptor, hint nav.Transition) {
	app.lastHint = hint
	slog.Debug(config.MsgRender,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyMode, d.ViewMode().String(),
		config.LogKeyHint, hint.String(),
	)

	var content fyne.CanvasObject
	switch v := d.(type) {
	case view.YearView:
		content = app.yearContent(v)
	case view.MonthView:
		content = app.monthContent(v)
	default:
		return
	}
	app.body.Objects = []fyne.CanvasObject{content}
	app.body.Refresh()

	inMonth := d.ViewMode() == view.ModeMonth
	setVisible(app.btnPrev, inMonth)
	setVisible(app.btnNext, inMonth)
	app.header.SetText(app.todayText())
}

// PresentEvent implements nav.EventPresenter.
func (app *GyegiApp) PresentEvent(ev calendar.EventRecord) {
	app.ShowEventDialog(ev)
}

// SetDataset swaps the events shown by the calendar and the feed.
func (app *GyegiApp) SetDataset(ds *dataset.Dataset) {
	app.Dataset = ds
	app.model.Store = ds.Store()
	app.model.Themes = ds
	if err := app.Server.Publish(app.Ctx, export.NewBuilder(), ds.Store().ActiveRecords()); err != nil {
		slog.Error(config.ErrICalEncode, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
	}
	app.Nav.Refresh()
}

// reloadDataset fetches the dataset from the preferred URL in the background.
func (app *GyegiApp) reloadDataset() {
	target := app.Preferences.String(config.PrefDatasetURL)
	go func() {
		ds, err := dataset.Load(app.Ctx, app.Fetcher, target)
		if err != nil {
			slog.Error(config.ErrDatasetDecode, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
			return
		}
		fyne.Do(func() { app.SetDataset(ds) })
	}()
}

// openFile shows a written document with the system handler.
func (app *GyegiApp) openFile(path string) error {
	return app.App.OpenURL(&url.URL{Scheme: config.SchemeFile, Path: path})
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}
