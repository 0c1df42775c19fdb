// Package monthly groups posts by calendar month and computes activity statistics.
package monthly

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/gorewood/tweetnotes/internal/archive"
)

// HoursPerDay is the number of hour-of-day buckets in ActivityStats.
const HoursPerDay = 24

// Key identifies a calendar month as year*100+month (e.g. 202303).
type Key int

// KeyOf returns the month key of t in t's own location.
func KeyOf(t time.Time) Key {
	return Key(t.Year()*100 + int(t.Month()))
}

// Year returns the four-digit year of the key.
func (k Key) Year() int {
	return int(k) / 100
}

// Month returns the calendar month of the key.
func (k Key) Month() time.Month {
	return time.Month(int(k) % 100)
}

// String returns the key as YYYYMM.
func (k Key) String() string {
	return fmt.Sprintf("%04d%02d", k.Year(), int(k.Month()))
}

// Label returns the key as YYYY-MM.
func (k Key) Label() string {
	return fmt.Sprintf("%04d-%02d", k.Year(), int(k.Month()))
}

// HourCount tallies the posts of one hour-of-day bucket.
type HourCount struct {
	Hour         int `json:"hour"`
	TweetCount   int `json:"tweet_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

// ActivityStats summarizes a month of posts.
// ByHour always holds all 24 buckets, indexed by local hour.
type ActivityStats struct {
	TweetCount   int                    `json:"tweet_count"`
	RetweetCount int                    `json:"retweet_count"`
	ReplyCount   int                    `json:"reply_count"`
	ByHour       [HoursPerDay]HourCount `json:"tweet_count_by_hour"`
}

// GroupByMonth partitions posts by their local year and month.
// Input order is preserved within each group.
func GroupByMonth(posts []archive.Post) map[Key][]archive.Post {
	groups := make(map[Key][]archive.Post)
	for _, post := range posts {
		key := KeyOf(post.CreatedAt)
		groups[key] = append(groups[key], post)
	}
	return groups
}

// SortedKeys returns the group keys in ascending month order.
func SortedKeys(groups map[Key][]archive.Post) []Key {
	return slices.Sorted(maps.Keys(groups))
}

// ComputeStats counts posts, retweets and replies in a single pass.
// A post that is both a retweet and a reply counts toward both.
func ComputeStats(posts []archive.Post) ActivityStats {
	var stats ActivityStats
	for hour := range stats.ByHour {
		stats.ByHour[hour].Hour = hour
	}

	for _, post := range posts {
		bucket := &stats.ByHour[post.CreatedAt.Hour()]
		bucket.TweetCount++
		stats.TweetCount++
		if post.IsRetweet() {
			bucket.RetweetCount++
			stats.RetweetCount++
		}
		if post.IsReply {
			bucket.ReplyCount++
			stats.ReplyCount++
		}
	}
	return stats
}
