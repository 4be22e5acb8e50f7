package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/classwatch"
)

// Run executes the watch pipeline: fetch the openings page, parse the
// course table, filter against the rule set, and print each matching
// course as an independent pretty-printed JSON object in document order.
func (c *WatchCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		url = classwatch.DefaultOpeningsURL()
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		return err
	}

	courses, err := deps.Parser.Parse(html)
	if err != nil {
		return err
	}

	for _, course := range deps.Rules.Apply(courses) {
		out, err := json.MarshalIndent(course, "", "  ")
		if err != nil {
			return classwatch.Errorf(classwatch.EINTERNAL, "serializing course %q: %v", course.ClassName, err)
		}
		fmt.Fprintln(deps.Stdout, string(out))
	}

	return nil
}
