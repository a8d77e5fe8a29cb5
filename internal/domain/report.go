package domain

import "time"

// DateLayout is the format of the Tanggal column.
const DateLayout = "2006-01-02"

// Report is one community pollution report as stored in the log.
type Report struct {
	Date          time.Time
	Location      string
	Description   string
	PhotoFilename string
}

// NewReport builds a report dated today.
func NewReport(location, description, photoFilename string) Report {
	return Report{
		Date:          Today(),
		Location:      location,
		Description:   description,
		PhotoFilename: photoFilename,
	}
}

// DateString formats the report date as stored in the log.
func (r Report) DateString() string {
	return r.Date.Format(DateLayout)
}

// HasPhoto reports whether a photo was uploaded with the report.
func (r Report) HasPhoto() bool {
	return r.PhotoFilename != ""
}

// ReportSubmitted is the event published after a report is appended to the log.
type ReportSubmitted struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	PhotoFilename string    `json:"photo_filename,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// NewReportSubmitted wraps a stored report in an event with the given id.
func NewReportSubmitted(id string, r Report) ReportSubmitted {
	return ReportSubmitted{
		ID:            id,
		Date:          r.DateString(),
		Location:      r.Location,
		Description:   r.Description,
		PhotoFilename: r.PhotoFilename,
		SubmittedAt:   clock.Now().UTC(),
	}
}
