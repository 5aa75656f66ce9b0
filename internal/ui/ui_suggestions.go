package ui

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/suggestion"
)

// ShowSuggestionForm asks for an optional contact and a message.
func (app *GyegiApp) ShowSuggestionForm() {
	contact := widget.NewEntry()
	message := widget.NewMultiLineEntry()
	message.Wrapping = fyne.TextWrapWord
	message.SetMinRowsVisible(4)

	d := dialog.NewForm(app.GetMsg(config.TKeySuggestTitle),
		app.GetMsg(config.TKeyBtnSubmit),
		app.GetMsg(config.TKeyBtnCancel),
		[]*widget.FormItem{
			widget.NewFormItem(app.GetMsg(config.TKeyLblContact), contact),
			widget.NewFormItem(app.GetMsg(config.TKeyLblMessage), message),
		},
		func(ok bool) {
			if ok {
				app.notice(app.GetMsg(app.submitSuggestion(contact.Text, message.Text)))
			}
		},
		app.MainWindow,
	)
	d.Resize(fyne.NewSize(config.EventDialogWidth, d.MinSize().Height))
	d.Show()
}

// submitSuggestion stores a suggestion and returns the translation key of
// the outcome.
func (app *GyegiApp) submitSuggestion(contact, message string) string {
	_, err := app.Suggestions.Submit(contact, message)
	switch {
	case errors.Is(err, suggestion.ErrEmptyMessage):
		return config.TKeySuggestEmpty
	case err != nil:
		slog.Error(config.ErrPersistence, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
		return config.TKeySuggestFailed
	default:
		return config.TKeySuggestSaved
	}
}

// ShowAdminLogin opens the admin panel, asking for the password first when
// the session is not granted yet.
func (app *GyegiApp) ShowAdminLogin() {
	if app.Admin.Active() {
		app.ShowAdminWindow()
		return
	}

	pass := widget.NewPasswordEntry()
	dialog.ShowForm(app.GetMsg(config.TKeyAdminLoginTitle),
		app.GetMsg(config.TKeyBtnLogin),
		app.GetMsg(config.TKeyBtnCancel),
		[]*widget.FormItem{widget.NewFormItem(app.GetMsg(config.TKeyLblPassword), pass)},
		func(ok bool) {
			if !ok {
				return
			}
			if err := app.Admin.Login(pass.Text); err != nil {
				app.notice(app.GetMsg(config.TKeyAdminDenied))
				return
			}
			app.ShowAdminWindow()
		},
		app.MainWindow,
	)
}

// sortEntries orders suggestions by one table column. Ties keep their
// current order in both directions.
func sortEntries(entries []suggestion.Entry, col int, asc bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !asc {
			a, b = b, a
		}
		switch col {
		case config.ColIDContact:
			return strings.ToLower(a.Contact) < strings.ToLower(b.Contact)
		case config.ColIDMessage:
			return strings.ToLower(a.Message) < strings.ToLower(b.Message)
		default: // config.ColIDCreated
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
}

// ShowAdminWindow lists every suggestion, newest first. Only one admin
// window exists at a time.
func (app *GyegiApp) ShowAdminWindow() {
	if app.adminWindow != nil {
		app.adminWindow.RequestFocus()
		return
	}

	entries, err := app.Suggestions.ListAll()
	if err != nil {
		app.notice(app.GetMsg(config.TKeyAdminLoadFailed))
	}

	slog.Info(config.LogMsgOpenAdmin,
		config.LogKeyComponent, config.CompUIAdmin,
		config.LogKeyCount, len(entries))

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinAdmin))
	app.adminWindow = w
	w.Resize(fyne.NewSize(config.AdminWinWidth, config.AdminWinHeight))
	w.SetOnClosed(func() { app.adminWindow = nil })

	exportBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportVCard), theme.DocumentSaveIcon(), func() {
		app.exportContacts(entries, w)
	})

	if len(entries) == 0 {
		exportBtn.Disable()
		w.SetContent(container.NewBorder(nil, exportBtn, nil, nil,
			widget.NewLabelWithStyle(app.GetMsg(config.TKeyNoSuggestions), fyne.TextAlignCenter, fyne.TextStyle{})))
		w.Show()
		return
	}

	w.SetContent(container.NewBorder(nil, exportBtn, nil, nil, app.suggestionTable(entries)))
	w.Show()
}

// suggestionTable renders entries in a table with sortable headers.
func (app *GyegiApp) suggestionTable(entries []suggestion.Entry) *widget.Table {
	currentSortCol := config.ColIDCreated
	sortAsc := false

	var table *widget.Table
	table = widget.NewTable(
		func() (int, int) {
			return len(entries), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(entries) {
				return
			}
			e := entries[id.Row]
			switch id.Col {
			case config.ColIDCreated:
				label.SetText(e.CreatedAt.Local().Format(config.DateTimeFormatDisplay))
			case config.ColIDContact:
				label.SetText(e.Contact)
			case config.ColIDMessage:
				label.SetText(strings.ReplaceAll(e.Message, "\n", " "))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("", func() {})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		var titleKey string
		switch id.Col {
		case config.ColIDCreated:
			titleKey = config.TKeyColCreated
		case config.ColIDContact:
			titleKey = config.TKeyColContact
		case config.ColIDMessage:
			titleKey = config.TKeyColMessage
		}

		text := app.GetMsg(titleKey)
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			sortEntries(entries, currentSortCol, sortAsc)
			slog.Debug(config.LogMsgSorted,
				config.LogKeyComponent, config.CompUIAdmin,
				config.LogKeySortCol, currentSortCol,
				config.LogKeySortAsc, sortAsc)
			table.Refresh()
		}
	}

	table.SetColumnWidth(config.ColIDCreated, config.ColWidthCreated)
	table.SetColumnWidth(config.ColIDContact, config.ColWidthContact)
	table.SetColumnWidth(config.ColIDMessage, config.ColWidthMessage)
	return table
}

// exportContacts saves the non-anonymous contacts as a vCard file.
func (app *GyegiApp) exportContacts(entries []suggestion.Entry, parent fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		n, err := suggestion.ExportContacts(wc, entries)
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			slog.Error(config.ErrVCardEncode, config.LogKeyComponent, config.CompUIAdmin, config.LogKeyError, err)
			dialog.ShowError(err, parent)
			return
		}
		slog.Info(config.MsgContactsExported,
			config.LogKeyComponent, config.CompUIAdmin,
			config.LogKeyCount, n,
			config.LogKeyFile, wc.URI().Path())
		dialog.ShowInformation(app.GetMsg(config.TKeyNoticeTitle),
			app.GetMsgWith(config.TKeyExportDone, map[string]interface{}{"Path": wc.URI().Path()}), parent)
	}, parent)
	d.SetFileName(config.DefaultVCardFile)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}
