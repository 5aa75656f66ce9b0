package ui

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/lessonplan"
)

var gradeKeys = map[calendar.GradeBand]string{
	calendar.GradeCommon: config.TKeyGradeCommon,
	calendar.GradeLower:  config.TKeyGradeLower,
	calendar.GradeUpper:  config.TKeyGradeUpper,
}

// ShowEventDialog shows an event with one tab per audience band. Closing the
// dialog cancels a lesson plan still being generated.
func (app *GyegiApp) ShowEventDialog(ev calendar.EventRecord) {
	slog.Info(config.MsgOpenEvent,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyEventID, ev.ID,
	)

	var task *lessonplan.Task
	content := app.eventContent(ev, func(t *lessonplan.Task) { task = t })

	d := dialog.NewCustom(ev.EventName, app.GetMsg(config.TKeyBtnClose), content, app.MainWindow)
	d.SetOnClosed(func() {
		if task != nil {
			task.Cancel()
		}
	})
	d.Resize(fyne.NewSize(config.EventDialogWidth, config.EventDialogHeight))
	d.Show()
}

// eventContent builds the dialog body. started receives every lesson plan
// task launched from it.
func (app *GyegiApp) eventContent(ev calendar.EventRecord, started func(*lessonplan.Task)) fyne.CanvasObject {
	notes := ev.Notes
	if notes == "" {
		notes = app.GetMsg(config.TKeyNoNotes)
	}

	desc := widget.NewLabel(ev.ShortDescription)
	desc.Wrapping = fyne.TextWrapWord
	noteLabel := widget.NewLabel(notes)
	noteLabel.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(
		widget.NewLabelWithStyle(ev.DisplayDate, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		desc,
		widget.NewCard("", app.GetMsg(config.TKeyTopicNotes), noteLabel),
	)

	if len(ev.GradeBands) == 0 {
		return container.NewBorder(top, nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyNoGradeResources)))
	}

	tabs := container.NewAppTabs()
	for _, band := range ev.GradeBands {
		tabs.Append(container.NewTabItem(app.GetMsg(gradeKeys[band]), app.gradeTab(ev, band, started)))
	}
	return container.NewBorder(top, nil, nil, nil, tabs)
}

// gradeTab lists the four resources of a band and the lesson plan button.
func (app *GyegiApp) gradeTab(ev calendar.EventRecord, band calendar.GradeBand, started func(*lessonplan.Task)) fyne.CanvasObject {
	res, ok := ev.Resources(band)
	if !ok {
		return widget.NewLabel(app.GetMsg(config.TKeyNoGradeResources))
	}

	items := []fyne.CanvasObject{
		app.resourceLink(config.TKeyResVideo, res.VideoURL),
		app.resourceLink(config.TKeyResPPT, res.PPTURL),
		app.resourceLink(config.TKeyResWorksheet, res.WorksheetPDFURL),
		app.resourceLink(config.TKeyResQuiz, res.QuizURL),
	}

	var btn *widget.Button
	btn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnLessonPlan), theme.DocumentPrintIcon(), func() {
		started(app.generatePlan(ev, band, btn))
	})
	items = append(items, btn)
	return container.NewVBox(items...)
}

// resourceLink is a hyperlink, or a disabled button when the material is
// not ready yet.
func (app *GyegiApp) resourceLink(key, raw string) fyne.CanvasObject {
	label := app.GetMsg(key)
	if calendar.Available(raw) {
		if u, err := url.Parse(raw); err == nil {
			return widget.NewHyperlink(label, u)
		}
	}
	btn := widget.NewButton(label+" · "+app.GetMsg(config.TKeyResNotReady), nil)
	btn.Disable()
	return btn
}

// generatePlan runs the generator in the background and prints the result.
// The button stays disabled until the task ends.
func (app *GyegiApp) generatePlan(ev calendar.EventRecord, band calendar.GradeBand, btn *widget.Button) *lessonplan.Task {
	btn.Disable()
	btn.SetText(app.GetMsg(config.TKeyPlanGenerating))

	task := lessonplan.Start(app.Ctx, app.Planner, lessonplan.SummaryOf(ev, band))
	go func() {
		plan, err := task.Wait()
		path := ""
		if err == nil {
			path, err = lessonplan.Print(app.Printer, plan)
		}
		fyne.Do(func() {
			btn.SetText(app.GetMsg(config.TKeyBtnLessonPlan))
			btn.Enable()
			app.planFinished(path, err)
		})
	}()
	return task
}

func (app *GyegiApp) planFinished(path string, err error) {
	if errors.Is(err, context.Canceled) {
		slog.Info(config.MsgPlanCancelled, config.LogKeyComponent, config.CompUI)
		return
	}
	if err != nil {
		slog.Warn(config.ErrPlanGenerate, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
		app.notice(app.GetMsg(config.TKeyPlanFailed))
		return
	}
	app.notice(app.GetMsgWith(config.TKeyExportDone, map[string]interface{}{"Path": path}))
}

// notice shows a non-fatal message over the main window.
func (app *GyegiApp) notice(msg string) {
	dialog.ShowInformation(app.GetMsg(config.TKeyNoticeTitle), msg, app.MainWindow)
}
