// Package yaml loads the filter rule set from a YAML rules file.
package yaml

import (
	"os"
	"strings"

	"github.com/fwojciec/classwatch"
	"gopkg.in/yaml.v3"
)

// rulesFile mirrors the rules file schema before validation. Every group is
// optional except schedule, whose two time bounds are mandatory.
type rulesFile struct {
	ClassRules struct {
		NameIncludes   []string `yaml:"name_includes"`
		LocationEquals string   `yaml:"location_equals"`
	} `yaml:"class_rules"`

	Instructors []string `yaml:"instructors"`

	Schedule struct {
		StartAfter  string   `yaml:"start_after"`
		EndBefore   string   `yaml:"end_before"`
		ExcludeDays []string `yaml:"exclude_days"`
		TimeFormat  string   `yaml:"time_format"`
	} `yaml:"schedule"`
}

// Load reads and validates the rules file at path.
// Returns an ECONFIG error if the file cannot be read or is invalid.
func Load(path string) (*classwatch.Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "reading rules file %s: %v", path, err)
	}
	return Parse(data)
}

// Parse validates raw rules file content and produces the immutable rule
// set. Name and instructor lists are lower-cased here so all later matching
// is case-insensitive by construction. Missing groups or sub-keys mean "no
// constraint", except schedule.start_after and schedule.end_before which
// are required.
func Parse(data []byte) (*classwatch.Ruleset, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "parsing rules file: %v", err)
	}

	layout := f.Schedule.TimeFormat
	if layout == "" {
		layout = classwatch.DefaultTimeLayout
	}

	if strings.TrimSpace(f.Schedule.StartAfter) == "" {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "schedule.start_after is required")
	}
	if strings.TrimSpace(f.Schedule.EndBefore) == "" {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "schedule.end_before is required")
	}

	startAfter, err := classwatch.ParseTimeOfDay(f.Schedule.StartAfter, layout)
	if err != nil {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "invalid schedule.start_after: %s", classwatch.ErrorMessage(err))
	}
	endBefore, err := classwatch.ParseTimeOfDay(f.Schedule.EndBefore, layout)
	if err != nil {
		return nil, classwatch.Errorf(classwatch.ECONFIG, "invalid schedule.end_before: %s", classwatch.ErrorMessage(err))
	}

	rules := &classwatch.Ruleset{
		NameIncludes: lowerAll(f.ClassRules.NameIncludes),
		Instructors:  lowerAll(f.Instructors),
		StartAfter:   startAfter,
		EndBefore:    endBefore,
		ExcludeDays:  f.Schedule.ExcludeDays,
	}
	if f.ClassRules.LocationEquals != "" {
		location := f.ClassRules.LocationEquals
		rules.LocationEquals = &location
	}

	return rules, nil
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}
