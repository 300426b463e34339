package bot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/gyomeihajime7-hub/Telebot/internal/files"
)

// listLimit caps how many records a /myfiles reply enumerates.
const listLimit = 10

// ErrNoAttachment indicates an upload event whose message carried no
// recognizable attachment.
var ErrNoAttachment = errors.New("message carries no attachment")

// Handlers contains the business logic behind each update variant.
type Handlers struct {
	Repo   files.Repo
	Sender Sender

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

// NewHandlers constructs Handlers over a repo and sender.
func NewHandlers(repo files.Repo, sender Sender) *Handlers {
	return &Handlers{Repo: repo, Sender: sender}
}

func (h *Handlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Start sends the fixed welcome message. No side effects.
func (h *Handlers) Start(ctx context.Context, ev Event) error {
	return h.Sender.Send(ctx, Outgoing{ChatID: ev.UserID, Text: welcomeText})
}

// Help sends the fixed usage message. No side effects.
func (h *Handlers) Help(ctx context.Context, ev Event) error {
	return h.Sender.Send(ctx, Outgoing{ChatID: ev.UserID, Text: helpText})
}

// MyFiles lists the user's stored records, newest first. Empty storage gets a
// fixed message; otherwise at most the ten most recent records are rendered
// with a count of the remainder.
func (h *Handlers) MyFiles(ctx context.Context, ev Event) error {
	recs, err := h.Repo.ListByUser(ctx, ev.UserID)
	if err != nil {
		return fmt.Errorf("list files for user %d: %w", ev.UserID, err)
	}

	if len(recs) == 0 {
		return h.Sender.Send(ctx, Outgoing{ChatID: ev.UserID, Text: emptyStorageText})
	}

	return h.Sender.Send(ctx, Outgoing{
		ChatID:    ev.UserID,
		Text:      renderFileList(recs),
		ParseMode: tgbotapi.ModeMarkdown,
	})
}

// Upload extracts the attachment, stores one record, and confirms. The insert
// commits before the confirmation goes out, so a failed send never loses the
// record.
func (h *Handlers) Upload(ctx context.Context, ev Event) error {
	att, ok := ExtractAttachment(ev.Message)
	if !ok {
		return ErrNoAttachment
	}

	rec := files.FileRecord{
		ID:         uuid.NewString(),
		UserID:     ev.UserID,
		Filename:   att.Filename,
		FileID:     att.FileID,
		FileSize:   att.FileSize,
		MimeType:   att.MimeType,
		UploadDate: h.now().UTC(),
	}
	if err := h.Repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("store file record: %w", err)
	}

	text := fmt.Sprintf("✅ **File Uploaded Successfully!**\n\n"+
		"📄 **Name**: %s\n"+
		"📊 **Size**: %s MB\n"+
		"🕒 **Stored**: %s\n\n"+
		"Use /myfiles to view all your files! 📁",
		rec.Filename,
		formatSizeMB(rec.FileSize),
		rec.UploadDate.Format("2006-01-02 15:04"),
	)
	return h.Sender.Send(ctx, Outgoing{
		ChatID:    ev.UserID,
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})
}

// Callback acknowledges a callback query. No other state changes.
func (h *Handlers) Callback(ctx context.Context, ev Event) error {
	return h.Sender.AnswerCallback(ctx, ev.CallbackID)
}

func renderFileList(recs []files.FileRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📁 **Your Files** (%d total)\n\n", len(recs))

	shown := recs
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	for i, rec := range shown {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, rec.Filename)
		fmt.Fprintf(&b, "   📊 %s MB • %s\n\n", formatSizeMB(rec.FileSize), rec.UploadDate.Format("2006-01-02 15:04"))
	}
	if len(recs) > listLimit {
		fmt.Fprintf(&b, "... and %d more files", len(recs)-listLimit)
	}
	return b.String()
}

// formatSizeMB renders a byte count as mebibytes rounded to two decimals,
// keeping at least one fractional digit ("1.0", not "1").
func formatSizeMB(bytes int64) string {
	mb := float64(bytes) / (1024 * 1024)
	rounded := math.Round(mb*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
