package suggestion

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/gyegi/calendar/internal/config"
)

// ExportContacts writes one vCard 4.0 per entry that left a contact, so
// admins can answer suggestions from their address book. It returns the
// number of cards written.
func ExportContacts(w io.Writer, entries []Entry) (int, error) {
	enc := vcard.NewEncoder(w)
	n := 0
	for _, e := range entries {
		if e.Anonymous() {
			continue
		}
		card := make(vcard.Card)
		card.SetValue(vcard.FieldUID, e.ID)
		card.SetValue(vcard.FieldFormattedName, e.Contact)
		if strings.Contains(e.Contact, config.EmailSeparator) {
			card.SetValue(vcard.FieldEmail, e.Contact)
		}
		card.SetValue(vcard.FieldNote, e.Message)
		card.SetRevision(e.CreatedAt)
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return n, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		n++
	}
	slog.Info(config.MsgContactsExported,
		slog.String(config.LogKeyComponent, config.CompSuggestion),
		slog.Int(config.LogKeyCount, n),
	)
	return n, nil
}
