package vubresto

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Pipeline wires the fetch, parse and write stages for one scraper run.
// Everything it needs is passed in explicitly; there is no ambient state.
type Pipeline struct {
	SourceURL   string
	HTTPTimeout time.Duration
	Workers     int
	Writer      *Writer
	Colors      *ColorTable

	// RunLog is optional; when nil no run history is kept.
	RunLog *RunStore
}

// Result is the outcome of the parse and write stages for one restaurant.
type Result struct {
	Key      RestaurantKey
	Entries  []MenuEntry
	WriteErr error
}

// Run executes one full fetch-parse-write cycle. Fetch and split failures
// abort the run; everything below that tier degrades to log entries and
// possibly incomplete output, per the error taxonomy of this system.
func (p *Pipeline) Run() error {
	startedAt := time.Now()

	results, err := p.run()
	p.record(startedAt, results, err)

	return err
}

func (p *Pipeline) run() ([]*Result, error) {
	doc, err := FetchDocument(p.SourceURL, p.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	weeks, err := SplitRestaurants(doc)
	if err != nil {
		return nil, err
	}

	// Parse stage: each restaurant is independent, fan out over the pool.
	pool := NewPool(p.Workers)
	var mu sync.Mutex
	results := make([]*Result, 0, len(weeks))
	for key, week := range weeks {
		pool.Go(func() {
			entries := ParseRestaurant(key, week, p.Colors)
			mu.Lock()
			results = append(results, &Result{Key: key, Entries: entries})
			mu.Unlock()
		})
	}
	pool.Wait()

	// Write stage: same pool abstraction, one file per restaurant. A
	// failed write only loses that restaurant's file.
	for _, res := range results {
		pool.Go(func() {
			if err := p.Writer.Write(res.Key, res.Entries); err != nil {
				slog.Error("failed to write menu file",
					"restaurant", res.Key.String(), "err", err)
				res.WriteErr = err
			}
		})
	}
	pool.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key.String() < results[j].Key.String()
	})
	return results, nil
}

// record persists the run summary when a run log is configured. Store
// failures are logged and never affect the pipeline outcome.
func (p *Pipeline) record(startedAt time.Time, results []*Result, fatal error) {
	if p.RunLog == nil {
		return
	}

	run := Run{
		SourceURL:  p.SourceURL,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if fatal != nil {
		msg := fatal.Error()
		run.FatalError = &msg
	}

	stats := make([]RestaurantStats, 0, len(results))
	for _, res := range results {
		st := RestaurantStats{
			Key:  res.Key.String(),
			Days: len(res.Entries),
		}
		for _, entry := range res.Entries {
			for _, item := range entry.Menus {
				if item == nil {
					st.NilItems++
				} else {
					st.Items++
				}
			}
		}
		if res.WriteErr != nil {
			msg := res.WriteErr.Error()
			st.WriteError = &msg
		}
		stats = append(stats, st)
	}

	if err := p.RunLog.RecordRun(run, stats); err != nil {
		slog.Warn("failed to record run history", "err", err)
	}
}
