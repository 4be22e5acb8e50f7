package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/classwatch"
	main "github.com/fwojciec/classwatch/cmd/classwatch"
	"github.com/fwojciec/classwatch/goquery"
	"github.com/fwojciec/classwatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureDocument holds two opening rows: "Toddler Dance Party" at SB
// matches the toddler rules, "Toddler Hip Hop" at NB fails the location
// criterion.
const fixtureDocument = `<!DOCTYPE html>
<html>
<body>
<table id="table-1">
<tbody>
<tr class="qweb-reg-openings-row">
<th><span class="badge">NEW</span> Toddler Dance Party</th>
<td data-title="Location">SB</td>
<td data-title="Instructor">Jane Smith</td>
<td data-title="Session">Fall 2026</td>
<td data-title="Gender">All</td>
<td data-title="Age">2-3</td>
<td data-title="Open">Yes</td>
<td data-title="Cat2">Dance</td>
<td data-title="Cat3">Beginner</td>
<td data-title="Days">Tue</td>
<td data-title="Times">4:00pm - 4:45pm</td>
<td data-title="Fee">$85.00</td>
</tr>
<tr class="qweb-reg-openings-row">
<th>Toddler Hip Hop</th>
<td data-title="Location">NB</td>
<td data-title="Instructor">Bob Jones</td>
<td data-title="Session">Fall 2026</td>
<td data-title="Gender">All</td>
<td data-title="Age">2-3</td>
<td data-title="Open">Yes</td>
<td data-title="Cat2">Dance</td>
<td data-title="Cat3">Beginner</td>
<td data-title="Days">Wed</td>
<td data-title="Times">5:00pm - 5:45pm</td>
<td data-title="Fee">$85.00</td>
</tr>
</tbody>
</table>
</body>
</html>`

func toddlerDeps(stdout, stderr *bytes.Buffer, fetcher classwatch.Fetcher) *main.Dependencies {
	location := "SB"
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Fetcher: fetcher,
		Parser:  goquery.NewParser(),
		Rules: &classwatch.Ruleset{
			NameIncludes:   []string{"toddler"},
			LocationEquals: &location,
			StartAfter:     classwatch.TimeOfDay{Hour: 15, Minute: 45},
			EndBefore:      classwatch.TimeOfDay{Hour: 19, Minute: 0},
		},
	}
}

func TestWatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("emits one JSON object per matching course", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return fixtureDocument, nil
			},
		}

		cmd := &main.WatchCmd{}
		err := cmd.Run(toddlerDeps(&stdout, &stderr, fetcher))

		require.NoError(t, err)

		decoder := json.NewDecoder(strings.NewReader(stdout.String()))
		var records []map[string]any
		for decoder.More() {
			var record map[string]any
			require.NoError(t, decoder.Decode(&record))
			records = append(records, record)
		}

		require.Len(t, records, 1)
		assert.Equal(t, "Toddler Dance Party", records[0]["class_name"])
		assert.Equal(t, "SB", records[0]["location"])
		assert.Equal(t, "4:00pm - 4:45pm", records[0]["times"])

		// The derived time-of-day values never reach the output.
		assert.NotContains(t, records[0], "start_time")
		assert.NotContains(t, records[0], "end_time")
	})

	t.Run("uses the default openings URL when none is given", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		var fetchedURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchedURL = url
				return fixtureDocument, nil
			},
		}

		cmd := &main.WatchCmd{}
		err := cmd.Run(toddlerDeps(&stdout, &stderr, fetcher))

		require.NoError(t, err)
		assert.Equal(t, classwatch.DefaultOpeningsURL(), fetchedURL)
	})

	t.Run("passes an explicit URL through to the fetcher", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		var fetchedURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchedURL = url
				return fixtureDocument, nil
			},
		}

		cmd := &main.WatchCmd{URL: "https://example.com/openings"}
		err := cmd.Run(toddlerDeps(&stdout, &stderr, fetcher))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/openings", fetchedURL)
	})

	t.Run("emits nothing when no course matches", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return fixtureDocument, nil
			},
		}

		deps := toddlerDeps(&stdout, &stderr, fetcher)
		deps.Rules.NameIncludes = []string{"advanced jazz"}

		cmd := &main.WatchCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", classwatch.Errorf(classwatch.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		cmd := &main.WatchCmd{}
		err := cmd.Run(toddlerDeps(&stdout, &stderr, fetcher))

		require.Error(t, err)
		assert.Equal(t, classwatch.EUNAVAILABLE, classwatch.ErrorCode(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("propagates parse failures and emits no partial output", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body>template changed</body></html>", nil
			},
		}

		cmd := &main.WatchCmd{}
		err := cmd.Run(toddlerDeps(&stdout, &stderr, fetcher))

		require.Error(t, err)
		assert.Equal(t, classwatch.ESTRUCTURE, classwatch.ErrorCode(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("works against an injected parser", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "irrelevant", nil
			},
		}

		deps := toddlerDeps(&stdout, &stderr, fetcher)
		deps.Parser = &mock.ScheduleParser{
			ParseFn: func(html string) ([]*classwatch.Course, error) {
				return nil, errors.New("boom")
			},
		}

		cmd := &main.WatchCmd{}
		err := cmd.Run(deps)

		assert.Error(t, err)
	})
}
