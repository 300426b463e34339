package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const defaultMimeType = "application/octet-stream"

// AttachmentKind names the attachment variants a message can carry.
type AttachmentKind string

const (
	KindDocument AttachmentKind = "document"
	KindPhoto    AttachmentKind = "photo"
	KindVideo    AttachmentKind = "video"
	KindAudio    AttachmentKind = "audio"
	KindVoice    AttachmentKind = "voice"
)

// Attachment is the normalized view of whatever file a message carried.
type Attachment struct {
	Kind     AttachmentKind
	FileID   string
	Filename string
	FileSize int64
	MimeType string
}

// ExtractAttachment selects the message's attachment by fixed priority:
// document, photo, video, audio, voice. Photos pick the largest offered
// variant. When the platform declares no name, one is synthesized from the
// kind and the leading characters of the file id, with a suffix per kind.
func ExtractAttachment(msg *tgbotapi.Message) (Attachment, bool) {
	switch {
	case msg.Document != nil:
		doc := msg.Document
		name := doc.FileName
		if name == "" {
			name = "document_" + shortID(doc.FileID)
		}
		return Attachment{
			Kind:     KindDocument,
			FileID:   doc.FileID,
			Filename: name,
			FileSize: int64(doc.FileSize),
			MimeType: orDefault(doc.MimeType),
		}, true

	case len(msg.Photo) > 0:
		photo := largestPhoto(msg.Photo)
		return Attachment{
			Kind:     KindPhoto,
			FileID:   photo.FileID,
			Filename: "photo_" + shortID(photo.FileID) + ".jpg",
			FileSize: int64(photo.FileSize),
			MimeType: defaultMimeType,
		}, true

	case msg.Video != nil:
		return Attachment{
			Kind:     KindVideo,
			FileID:   msg.Video.FileID,
			Filename: "video_" + shortID(msg.Video.FileID) + ".mp4",
			FileSize: int64(msg.Video.FileSize),
			MimeType: orDefault(msg.Video.MimeType),
		}, true

	case msg.Audio != nil:
		audio := msg.Audio
		name := audio.FileName
		if name == "" {
			name = "audio_" + shortID(audio.FileID) + ".mp3"
		}
		return Attachment{
			Kind:     KindAudio,
			FileID:   audio.FileID,
			Filename: name,
			FileSize: int64(audio.FileSize),
			MimeType: orDefault(audio.MimeType),
		}, true

	case msg.Voice != nil:
		return Attachment{
			Kind:     KindVoice,
			FileID:   msg.Voice.FileID,
			Filename: "voice_" + shortID(msg.Voice.FileID) + ".ogg",
			FileSize: int64(msg.Voice.FileSize),
			MimeType: orDefault(msg.Voice.MimeType),
		}, true
	}

	return Attachment{}, false
}

// largestPhoto returns the highest-resolution variant on offer.
func largestPhoto(sizes []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best
}

func shortID(fileID string) string {
	if len(fileID) > 8 {
		return fileID[:8]
	}
	return fileID
}

func orDefault(mimeType string) string {
	if mimeType == "" {
		return defaultMimeType
	}
	return mimeType
}
