package mock

import "github.com/fwojciec/classwatch"

var _ classwatch.ScheduleParser = (*ScheduleParser)(nil)

// ScheduleParser is a mock implementation of classwatch.ScheduleParser.
type ScheduleParser struct {
	ParseFn func(html string) ([]*classwatch.Course, error)
}

func (p *ScheduleParser) Parse(html string) ([]*classwatch.Course, error) {
	return p.ParseFn(html)
}
