// Package archive parses a Twitter/X data export into typed posts.
package archive

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// TimestampLayout is the created_at format used by the Twitter archive,
// e.g. "Sat Mar 11 04:12:48 +0000 2023".
const TimestampLayout = "Mon Jan 02 15:04:05 -0700 2006"

// retweetPrefix marks a re-shared post in the body text.
const retweetPrefix = "RT @"

// ErrNoArray is returned when the archive content has no JSON array.
var ErrNoArray = errors.New("archive contains no JSON array")

// ErrMissingField is wrapped by RecordError when a required field is absent.
var ErrMissingField = errors.New("missing required field")

// Post is a single archived tweet. Values are immutable once parsed.
type Post struct {
	CreatedAt time.Time `json:"created_at"`
	FullText  string    `json:"full_text"`
	IsReply   bool      `json:"is_reply"`
}

// IsRetweet reports whether the post re-shares another account's tweet.
func (p Post) IsRetweet() bool {
	return strings.HasPrefix(p.FullText, retweetPrefix)
}

// RecordError describes why a single archive record could not be parsed.
type RecordError struct {
	Index int
	Field string
	Err   error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// record mirrors one element of the exported tweets array.
type record struct {
	Tweet *struct {
		CreatedAt       *string         `json:"created_at"`
		FullText        *string         `json:"full_text"`
		InReplyToUserID json.RawMessage `json:"in_reply_to_user_id"`
	} `json:"tweet"`
}

// Load reads the archive file fully and parses it.
func Load(path string, loc *time.Location) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", path, err)
	}
	return Parse(data, loc)
}

// Parse decodes archive content into posts in source order.
// Anything before the first '[' (the "window.YTD.tweets.part0 = " assignment)
// is skipped. Any bad record fails the whole batch.
func Parse(content []byte, loc *time.Location) ([]Post, error) {
	if loc == nil {
		loc = time.Local
	}

	start := bytes.IndexByte(content, '[')
	if start < 0 {
		return nil, ErrNoArray
	}

	var records []record
	if err := json.Unmarshal(content[start:], &records); err != nil {
		return nil, fmt.Errorf("parsing archive JSON: %w", err)
	}

	posts := make([]Post, 0, len(records))
	for i, rec := range records {
		post, err := rec.toPost(i, loc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// toPost validates a record and converts it into a Post.
func (r record) toPost(index int, loc *time.Location) (Post, error) {
	if r.Tweet == nil {
		return Post{}, &RecordError{Index: index, Field: "tweet", Err: ErrMissingField}
	}
	if r.Tweet.CreatedAt == nil {
		return Post{}, &RecordError{Index: index, Field: "tweet.created_at", Err: ErrMissingField}
	}
	if r.Tweet.FullText == nil {
		return Post{}, &RecordError{Index: index, Field: "tweet.full_text", Err: ErrMissingField}
	}

	created, err := ParseTimestamp(*r.Tweet.CreatedAt)
	if err != nil {
		return Post{}, &RecordError{Index: index, Field: "tweet.created_at", Err: err}
	}

	return Post{
		CreatedAt: created.In(loc),
		FullText:  *r.Tweet.FullText,
		IsReply:   !isNull(r.Tweet.InReplyToUserID),
	}, nil
}

// ParseTimestamp parses an archive created_at value and returns it in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

// isNull reports whether a raw JSON value is absent or literally null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
