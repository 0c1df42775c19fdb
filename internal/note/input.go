package note

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gorewood/tweetnotes/internal/archive"
	"github.com/gorewood/tweetnotes/internal/monthly"
)

// DisplayLayout is the timestamp format shown in notes.
const DisplayLayout = "2006-01-02 15:04:05"

// idLayout formats note IDs as YYYYMMDDHHMMSS followed by milliseconds.
const idLayout = "20060102150405.000"

// ErrEmptyGroup is returned when a note is requested for zero posts.
var ErrEmptyGroup = errors.New("no posts in month")

// FormattedTweet is a post ready for rendering.
type FormattedTweet struct {
	CreatedAt string `json:"created_at"`
	Text      string `json:"text"`
}

// Input is the data one monthly note is rendered from.
type Input struct {
	ID            string                `json:"id"`
	FileCreatedAt string                `json:"file_created_at"`
	Month         string                `json:"month"`
	Year          string                `json:"year"`
	Stats         monthly.ActivityStats `json:"stats"`
	Tweets        []FormattedTweet      `json:"tweets"`
}

// NewInput builds the render input for one month of posts.
// ID, year, month and creation time come from the earliest post; among
// posts sharing the earliest timestamp the first in input order wins.
func NewInput(posts []archive.Post) (*Input, error) {
	if len(posts) == 0 {
		return nil, ErrEmptyGroup
	}

	earliest := earliestCreatedAt(posts)

	return &Input{
		ID:            FormatID(earliest),
		FileCreatedAt: earliest.Format(DisplayLayout),
		Month:         fmt.Sprintf("%02d", int(earliest.Month())),
		Year:          fmt.Sprintf("%d", earliest.Year()),
		Stats:         monthly.ComputeStats(posts),
		Tweets:        formatTweets(posts),
	}, nil
}

// FormatID formats a timestamp as a millisecond-precision note ID.
func FormatID(t time.Time) string {
	return strings.Replace(t.Format(idLayout), ".", "", 1)
}

// earliestCreatedAt returns the creation time of the first earliest post.
func earliestCreatedAt(posts []archive.Post) time.Time {
	earliest := posts[0].CreatedAt
	for _, post := range posts[1:] {
		if post.CreatedAt.Before(earliest) {
			earliest = post.CreatedAt
		}
	}
	return earliest
}

// formatTweets formats posts and orders them by formatted timestamp.
func formatTweets(posts []archive.Post) []FormattedTweet {
	tweets := make([]FormattedTweet, 0, len(posts))
	for _, post := range posts {
		tweets = append(tweets, FormattedTweet{
			CreatedAt: post.CreatedAt.Format(DisplayLayout),
			Text:      FormatText(post.FullText),
		})
	}
	slices.SortStableFunc(tweets, func(a, b FormattedTweet) int {
		return strings.Compare(a.CreatedAt, b.CreatedAt)
	})
	return tweets
}
