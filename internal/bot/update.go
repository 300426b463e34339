package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// EventKind tags the variant an inbound update was classified into.
type EventKind int

const (
	EventUnhandled EventKind = iota
	EventCommand
	EventUpload
	EventCallback
)

// Recognized commands.
const (
	CommandStart   = "start"
	CommandHelp    = "help"
	CommandMyFiles = "myfiles"
)

// Event is the classified form of one update. Exactly one variant applies;
// fields beyond the variant's own are zero.
type Event struct {
	Kind       EventKind
	Command    string
	UserID     int64
	Message    *tgbotapi.Message
	CallbackID string
}

// Classify maps an update onto its handler variant. First match wins:
// commands by text prefix, then attachment presence, then callback query.
// Messages without an identified sender and anything else fall through to
// EventUnhandled, which is acknowledged without action.
func Classify(upd *tgbotapi.Update) Event {
	if msg := upd.Message; msg != nil && msg.From != nil {
		userID := msg.From.ID

		if msg.Text != "" {
			switch {
			case strings.HasPrefix(msg.Text, "/"+CommandStart):
				return Event{Kind: EventCommand, Command: CommandStart, UserID: userID, Message: msg}
			case strings.HasPrefix(msg.Text, "/"+CommandHelp):
				return Event{Kind: EventCommand, Command: CommandHelp, UserID: userID, Message: msg}
			case strings.HasPrefix(msg.Text, "/"+CommandMyFiles):
				return Event{Kind: EventCommand, Command: CommandMyFiles, UserID: userID, Message: msg}
			}
			return Event{Kind: EventUnhandled}
		}

		if hasAttachment(msg) {
			return Event{Kind: EventUpload, UserID: userID, Message: msg}
		}
	}

	if cb := upd.CallbackQuery; cb != nil && cb.ID != "" {
		ev := Event{Kind: EventCallback, CallbackID: cb.ID}
		if cb.From != nil {
			ev.UserID = cb.From.ID
		}
		return ev
	}

	return Event{Kind: EventUnhandled}
}

func hasAttachment(msg *tgbotapi.Message) bool {
	return msg.Document != nil ||
		len(msg.Photo) > 0 ||
		msg.Video != nil ||
		msg.Audio != nil ||
		msg.Voice != nil
}
