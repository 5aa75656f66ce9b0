package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/view"
)

var weekdayKeys = [config.DaysPerWeek]string{
	config.TKeyWeekdaySun,
	config.TKeyWeekdayMon,
	config.TKeyWeekdayTue,
	config.TKeyWeekdayWed,
	config.TKeyWeekdayThu,
	config.TKeyWeekdayFri,
	config.TKeyWeekdaySat,
}

func (app *GyegiApp) monthName(month int) string {
	name := app.GetMsgWith(config.TKeyMonthName, map[string]interface{}{"Month": month})
	if name == config.TKeyMonthName {
		return fmt.Sprintf(config.FallbackMonthName, month)
	}
	return name
}

func (app *GyegiApp) eventLabel(ev calendar.EventRecord) string {
	return fmt.Sprintf(config.EventLineFormat, ev.Date.Month, ev.Date.Day, ev.EventName)
}

// yearContent lays out the twelve month cards followed by the floating
// observances and the common topics.
func (app *GyegiApp) yearContent(v view.YearView) fyne.CanvasObject {
	cards := make([]fyne.CanvasObject, 0, len(v.Months))
	for _, m := range v.Months {
		month := m.Month
		title := widget.NewButton(fmt.Sprintf("%s %s", m.Icon, app.monthName(month)), func() {
			app.dispatch(nav.JumpToMonth{Month: month})
		})
		title.Importance = widget.LowImportance

		items := []fyne.CanvasObject{title}
		if len(m.Events) == 0 {
			items = append(items, widget.NewLabel(app.GetMsg(config.TKeyNoEvents)))
		}
		for _, ev := range m.Events {
			date := ev.Date
			items = append(items, widget.NewButton(app.eventLabel(ev), func() {
				app.dispatch(nav.OpenEvent{Date: date})
			}))
		}
		cards = append(cards, widget.NewCard("", "", container.NewVBox(items...)))
	}

	return container.NewVScroll(container.NewVBox(
		container.NewGridWithColumns(config.YearGridColumns, cards...),
		app.undatedCard(),
		app.topicsCard(),
	))
}

// undatedCard lists observances without a fixed date. They open directly
// since there is no date to look them up by.
func (app *GyegiApp) undatedCard() fyne.CanvasObject {
	records := app.Dataset.Store().UndatedRecords()
	items := make([]fyne.CanvasObject, 0, len(records))
	for _, r := range records {
		ev := r
		items = append(items, widget.NewButton(fmt.Sprintf("%s · %s", ev.DisplayDate, ev.EventName), func() {
			app.ShowEventDialog(ev)
		}))
	}
	if len(items) == 0 {
		items = append(items, widget.NewLabel(app.GetMsg(config.TKeyNoEvents)))
	}
	return widget.NewCard(app.GetMsg(config.TKeyUndatedTitle), "", container.NewVBox(items...))
}

func (app *GyegiApp) topicsCard() fyne.CanvasObject {
	items := make([]fyne.CanvasObject, 0, len(app.Dataset.Topics))
	for _, t := range app.Dataset.Topics {
		topic := t
		items = append(items, widget.NewButton(topic.Title, func() {
			app.showTopic(topic)
		}))
	}
	return widget.NewCard(app.GetMsg(config.TKeyTopicsTitle), "",
		container.NewGridWithColumns(config.TopicGridColumns, items...))
}

// showTopic shows a common topic. Topics carry no date or material yet.
func (app *GyegiApp) showTopic(t dataset.Topic) {
	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyTopicDate), widget.NewLabel(config.FallbackTopicDate)),
		widget.NewFormItem(app.GetMsg(config.TKeyTopicDesc), wrapLabel(config.FallbackTopicDesc)),
		widget.NewFormItem(app.GetMsg(config.TKeyTopicNotes), wrapLabel(config.FallbackTopicNotes)),
	)
	content := container.NewVBox(form, widget.NewLabel(app.GetMsg(config.TKeyTopicNoResources)))
	dialog.ShowCustom(t.Title, app.GetMsg(config.TKeyBtnClose), content, app.MainWindow)
}

func wrapLabel(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

// monthContent draws the 6x7 grid. Fyne grids cannot span cells, so theme
// cells are shaded and the theme text sits in a card under the grid.
func (app *GyegiApp) monthContent(v view.MonthView) fyne.CanvasObject {
	title := widget.NewLabel(fmt.Sprintf("%s %d · %s", v.Icon, v.Year, app.monthName(v.Month)))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	heads := make([]fyne.CanvasObject, 0, config.WeekGridColumns)
	for _, key := range weekdayKeys {
		l := widget.NewLabel(app.GetMsg(key))
		l.Alignment = fyne.TextAlignCenter
		heads = append(heads, l)
	}

	cells := v.Cells()
	objects := make([]fyne.CanvasObject, 0, len(cells))
	for _, c := range cells {
		objects = append(objects, app.dayCell(c))
	}

	parts := []fyne.CanvasObject{
		title,
		container.NewGridWithColumns(config.WeekGridColumns, heads...),
		container.NewGridWithColumns(config.WeekGridColumns, objects...),
	}
	if block, ok := v.Trailing.(view.ThemeBlock); ok {
		parts = append(parts, widget.NewCard(v.Icon, "", widget.NewLabelWithStyle(block.Text, fyne.TextAlignLeading, fyne.TextStyle{})))
	}
	return container.NewVScroll(container.NewVBox(parts...))
}

func (app *GyegiApp) dayCell(c view.Cell) fyne.CanvasObject {
	switch c.Kind {
	case view.CellTheme:
		return canvas.NewRectangle(themeShade())
	case view.CellEmpty:
		return widget.NewLabel("")
	}

	d := c.Day
	if d.Event == nil {
		l := widget.NewLabel(fmt.Sprint(d.Day))
		l.TextStyle = fyne.TextStyle{Bold: d.IsToday}
		return l
	}

	date := d.Date
	btn := widget.NewButton(fmt.Sprintf("%d %s", d.Day, d.Event.EventName), func() {
		app.dispatch(nav.OpenEvent{Date: date})
	})
	if d.IsToday {
		btn.Importance = widget.HighImportance
	}
	return btn
}

func themeShade() color.Color {
	return theme.Color(theme.ColorNameHover)
}
