package report

import (
	"net/url"
	"path"

	"github.com/couchcryptid/ocean-defender/internal/domain"
)

// DefaultPhotoRoot is the URL prefix photos are served under.
const DefaultPhotoRoot = "/uploads/"

// EmptyFeedMessage is shown when the log has no reports.
const EmptyFeedMessage = "Belum ada laporan yang tersedia."

// Entry is one rendered report card.
type Entry struct {
	Location    string
	Date        string
	Description string
	PhotoURL    string
}

// Feed is the rendered report list. Placeholder is set only when Entries is empty.
type Feed struct {
	Entries     []Entry
	Placeholder string
}

// Render turns stored reports into feed entries, newest first.
func Render(reports []domain.Report, photoRoot string) Feed {
	if len(reports) == 0 {
		return Feed{Placeholder: EmptyFeedMessage}
	}
	entries := make([]Entry, 0, len(reports))
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		e := Entry{
			Location:    r.Location,
			Date:        r.DateString(),
			Description: r.Description,
		}
		if r.HasPhoto() {
			e.PhotoURL = PhotoURL(photoRoot, r.PhotoFilename)
		}
		entries = append(entries, e)
	}
	return Feed{Entries: entries}
}

// PhotoURL is the escaped URL of a stored photo under photoRoot.
func PhotoURL(photoRoot, filename string) string {
	return path.Join(photoRoot, url.PathEscape(filename))
}
