package classwatch

import "strings"

// Ruleset is the immutable set of filter criteria loaded once per run.
// A zero value for any criterion other than the two time bounds means
// "no constraint".
type Ruleset struct {
	// NameIncludes holds lowercase substrings that must all appear in the
	// class name. Empty means any name matches.
	NameIncludes []string

	// LocationEquals, when set, requires an exact, case-sensitive location
	// match. Nil means any location matches.
	LocationEquals *string

	// Instructors holds lowercase substrings of which at least one must
	// appear in the instructor field. Empty means any instructor matches.
	Instructors []string

	// StartAfter and EndBefore bound the course time window, inclusive on
	// both ends. These are mandatory and always enforced.
	StartAfter TimeOfDay
	EndBefore  TimeOfDay

	// ExcludeDays rejects courses whose raw days string equals one of
	// these literals exactly. "MWF" excludes only the literal "MWF", not
	// every course meeting on a Monday.
	ExcludeDays []string
}

// Matches reports whether a course satisfies every configured criterion.
// Criteria with no configured value are vacuously true, including the
// instructor list: an empty list matches any instructor, consistent with
// the other optional criteria.
func (r *Ruleset) Matches(c *Course) bool {
	return r.matchesName(c) &&
		r.matchesLocation(c) &&
		r.matchesInstructor(c) &&
		r.matchesWindow(c) &&
		r.matchesDays(c)
}

// Apply filters courses down to those matching the rule set, preserving
// order.
func (r *Ruleset) Apply(courses []*Course) []*Course {
	var matched []*Course
	for _, c := range courses {
		if r.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (r *Ruleset) matchesName(c *Course) bool {
	name := strings.ToLower(c.ClassName)
	for _, substr := range r.NameIncludes {
		if !strings.Contains(name, substr) {
			return false
		}
	}
	return true
}

func (r *Ruleset) matchesLocation(c *Course) bool {
	return r.LocationEquals == nil || c.Location == *r.LocationEquals
}

func (r *Ruleset) matchesInstructor(c *Course) bool {
	if len(r.Instructors) == 0 {
		return true
	}
	instructor := strings.ToLower(c.Instructor)
	for _, substr := range r.Instructors {
		if strings.Contains(instructor, substr) {
			return true
		}
	}
	return false
}

func (r *Ruleset) matchesWindow(c *Course) bool {
	return !c.StartTime.Before(r.StartAfter) && !c.EndTime.After(r.EndBefore)
}

func (r *Ruleset) matchesDays(c *Course) bool {
	for _, day := range r.ExcludeDays {
		if c.Days == day {
			return false
		}
	}
	return true
}
