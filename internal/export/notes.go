package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/monthly"
	"github.com/gorewood/tweetnotes/internal/note"
)

// Skip stages reported in Skipped.
const (
	StageInput  = "input"
	StageRender = "render"
	StageWrite  = "write"
)

// Skip records a month that was not written.
type Skip struct {
	Key   monthly.Key
	Stage string
	Err   error
}

// MarshalJSON encodes the skip with a YYYY-MM month and the error message.
func (s Skip) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month  string `json:"month"`
		Stage  string `json:"stage"`
		Reason string `json:"reason"`
	}{s.Key.Label(), s.Stage, s.Reason()})
}

// Reason returns the error message of the skip.
func (s Skip) Reason() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Result lists the files written and the months skipped by WriteNotes.
type Result struct {
	Written []string `json:"written"`
	Skipped []Skip   `json:"skipped,omitempty"`
}

// FileName returns the note file name for a month: tweets_YYYYMM.md.
func FileName(key monthly.Key) string {
	return "tweets_" + key.String() + ".md"
}

// WriteNotes renders one note per month into dir, in ascending month order.
// A month that fails to build, render or write is logged and skipped;
// the remaining months are still written. A failed render leaves no file.
func WriteNotes(
	groups map[monthly.Key][]archive.Post, dir string, renderer note.Renderer, log logrus.FieldLogger,
) Result {
	var result Result
	for _, key := range monthly.SortedKeys(groups) {
		path := filepath.Join(dir, FileName(key))
		if skip := writeNote(groups[key], key, path, renderer, log); skip != nil {
			result.Skipped = append(result.Skipped, *skip)
			continue
		}
		result.Written = append(result.Written, path)
	}
	return result
}

// writeNote renders and writes a single month. Returns nil on success.
func writeNote(posts []archive.Post, key monthly.Key, path string, renderer note.Renderer, log logrus.FieldLogger) *Skip {
	entry := log.WithField("month", key.Label())

	in, err := note.NewInput(posts)
	if err != nil {
		entry.WithError(err).Warnf("Failed to create the note input for %s", key)
		return &Skip{Key: key, Stage: StageInput, Err: err}
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, in); err != nil {
		entry.WithError(err).Warnf("Failed to render the note for %s", key)
		return &Skip{Key: key, Stage: StageRender, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		err = fmt.Errorf("writing %s: %w", path, err)
		entry.WithError(err).Warnf("Failed to write the note file %s", path)
		return &Skip{Key: key, Stage: StageWrite, Err: err}
	}

	entry.WithField("tweets", in.Stats.TweetCount).Infof("Saved the tweets to %s", path)
	return nil
}

// Plan lists the files WriteNotes would write, without rendering anything.
func Plan(groups map[monthly.Key][]archive.Post, dir string) []string {
	keys := monthly.SortedKeys(groups)
	paths := make([]string, 0, len(keys))
	for _, key := range keys {
		paths = append(paths, filepath.Join(dir, FileName(key)))
	}
	return paths
}
