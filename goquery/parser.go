// Package goquery provides a goquery-based implementation of
// classwatch.ScheduleParser for the registration openings page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/classwatch"
)

// Selectors for the known openings page template. The page structure is
// externally controlled; a template change must surface as a structural
// error rather than silently yield zero records.
const (
	tableSelector      = "table#table-1"
	openingRowSelector = "tr.qweb-reg-openings-row"
)

// courseAttributes are the data-title values of the named cells every
// opening row must carry, in table order.
var courseAttributes = []string{
	"Location", "Instructor", "Session", "Gender", "Age",
	"Open", "Cat2", "Cat3", "Days", "Times", "Fee",
}

// Ensure Parser implements classwatch.ScheduleParser at compile time.
var _ classwatch.ScheduleParser = (*Parser)(nil)

// Parser extracts course offerings from the openings table of a schedule
// page document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse locates the openings table and extracts one Course per opening row,
// in document order. A missing table or table body is an ESTRUCTURE error;
// a row missing any named cell aborts the parse with an EMISSINGFIELD
// error. There is no per-row recovery: the table is expected to be
// internally consistent within a single fetch.
func (p *Parser) Parse(html string) ([]*classwatch.Course, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, classwatch.Errorf(classwatch.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find(tableSelector)
	if table.Length() == 0 {
		return nil, classwatch.Errorf(classwatch.ESTRUCTURE, "table %q not found", tableSelector)
	}

	body := table.Find("tbody")
	if body.Length() == 0 {
		return nil, classwatch.Errorf(classwatch.ESTRUCTURE, "tbody not found in %q", tableSelector)
	}

	var courses []*classwatch.Course
	var rowErr error
	body.Find(openingRowSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		course, err := extractCourse(&tableRow{sel: sel})
		if err != nil {
			rowErr = err
			return false
		}
		courses = append(courses, course)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return courses, nil
}

// Row provides attribute-keyed access to the cells of a single table row.
// tableRow adapts a goquery selection; tests may supply any other markup
// representation.
type Row interface {
	// HeaderSegments returns the non-empty trimmed text segments of the
	// row's header cell, or nil if the row has no header cell.
	HeaderSegments() []string

	// Cell returns the collapsed text of the cell named by the attribute,
	// reporting whether such a cell exists.
	Cell(attribute string) (string, bool)
}

// extractCourse maps one row into a Course. The header cell may carry an
// optional leading decoration (a badge such as "NEW") before the class
// name; with exactly two segments the second is the name, otherwise the
// first.
func extractCourse(row Row) (*classwatch.Course, error) {
	segments := row.HeaderSegments()
	if len(segments) == 0 {
		return nil, classwatch.Errorf(classwatch.EMISSINGFIELD, "header cell not found in opening row")
	}
	name := segments[0]
	if len(segments) == 2 {
		name = segments[1]
	}

	c := &classwatch.Course{ClassName: name}
	for _, attribute := range courseAttributes {
		text, ok := row.Cell(attribute)
		if !ok {
			return nil, classwatch.Errorf(classwatch.EMISSINGFIELD, "cell with data-title %q not found", attribute)
		}
		switch attribute {
		case "Location":
			c.Location = text
		case "Instructor":
			c.Instructor = text
		case "Session":
			c.Session = text
		case "Gender":
			c.Gender = text
		case "Age":
			c.Age = text
		case "Open":
			c.Open = text
		case "Cat2":
			c.Cat2 = text
		case "Cat3":
			c.Cat3 = text
		case "Days":
			c.Days = text
		case "Times":
			c.Times = text
		case "Fee":
			c.Fee = text
		}
	}

	start, end, err := classwatch.ParseTimeRange(c.Times)
	if err != nil {
		return nil, err
	}
	c.StartTime = start
	c.EndTime = end

	return c, nil
}

// tableRow adapts a goquery row selection to the Row interface.
type tableRow struct {
	sel *goquery.Selection
}

func (r *tableRow) HeaderSegments() []string {
	header := r.sel.Find("th").First()
	if header.Length() == 0 {
		return nil
	}

	var segments []string
	header.Contents().Each(func(_ int, c *goquery.Selection) {
		if text := strings.TrimSpace(c.Text()); text != "" {
			segments = append(segments, text)
		}
	})
	return segments
}

func (r *tableRow) Cell(attribute string) (string, bool) {
	cell := r.sel.Find(`td[data-title="` + attribute + `"]`).First()
	if cell.Length() == 0 {
		return "", false
	}
	return collapseWhitespace(cell.Text()), true
}

// collapseWhitespace trims the text and folds internal whitespace runs into
// single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
