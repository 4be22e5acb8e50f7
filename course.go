package classwatch

// Course represents a single class offering extracted from one opening row
// of the schedule table. It is constructed once by the schedule parser and
// never mutated afterwards.
type Course struct {
	ClassName  string `json:"class_name"`
	Location   string `json:"location"`
	Instructor string `json:"instructor"`
	Session    string `json:"session"`
	Gender     string `json:"gender"`
	Age        string `json:"age"`
	Open       string `json:"open"`
	Cat2       string `json:"cat2"`
	Cat3       string `json:"cat3"`
	Days       string `json:"days"`
	Times      string `json:"times"`
	Fee        string `json:"fee"`

	// StartTime and EndTime are derived from Times at extraction and are
	// excluded from serialization. No ordering between them is guaranteed;
	// callers must not assume StartTime precedes EndTime.
	StartTime TimeOfDay `json:"-"`
	EndTime   TimeOfDay `json:"-"`
}

// ScheduleParser extracts course offerings from an openings page document.
type ScheduleParser interface {
	// Parse locates the openings table in the document and returns one
	// Course per opening row, in document order. Returns an ESTRUCTURE
	// error if the expected table markers are absent.
	Parse(html string) ([]*Course, error)
}
