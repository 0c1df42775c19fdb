package note

import (
	"errors"
	"testing"
	"time"

	"github.com/gorewood/tweetnotes/internal/archive"
)

func marchPosts() []archive.Post {
	return []archive.Post{
		{CreatedAt: time.Date(2023, 3, 15, 0, 12, 48, 0, time.UTC), FullText: "tweet1"},
		{CreatedAt: time.Date(2023, 3, 12, 2, 12, 48, 0, time.UTC), FullText: "RT @hoge: tweet2"},
		{CreatedAt: time.Date(2023, 3, 14, 23, 12, 48, 0, time.UTC), FullText: "@hoge tweet3\nmore", IsReply: true},
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "whole seconds",
			in:   time.Date(2023, 3, 11, 4, 12, 48, 0, time.UTC),
			want: "20230311041248000",
		},
		{
			name: "milliseconds kept",
			in:   time.Date(2023, 3, 11, 4, 12, 48, 7_000_000, time.UTC),
			want: "20230311041248007",
		},
		{
			name: "sub-millisecond truncated",
			in:   time.Date(2023, 12, 1, 0, 0, 0, 123_999_999, time.UTC),
			want: "20231201000000123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatID(tt.in); got != tt.want {
				t.Errorf("FormatID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewInput(t *testing.T) {
	in, err := NewInput(marchPosts())
	if err != nil {
		t.Fatalf("NewInput() error = %v", err)
	}

	if in.ID != "20230312021248000" {
		t.Errorf("ID = %q, want earliest post's timestamp", in.ID)
	}
	if in.FileCreatedAt != "2023-03-12 02:12:48" {
		t.Errorf("FileCreatedAt = %q", in.FileCreatedAt)
	}
	if in.Year != "2023" || in.Month != "03" {
		t.Errorf("Year/Month = %q/%q, want 2023/03", in.Year, in.Month)
	}
	if in.Stats.TweetCount != 3 || in.Stats.RetweetCount != 1 || in.Stats.ReplyCount != 1 {
		t.Errorf("Stats = %+v", in.Stats)
	}

	wantOrder := []string{"2023-03-12 02:12:48", "2023-03-14 23:12:48", "2023-03-15 00:12:48"}
	if len(in.Tweets) != len(wantOrder) {
		t.Fatalf("len(Tweets) = %d", len(in.Tweets))
	}
	for i, want := range wantOrder {
		if in.Tweets[i].CreatedAt != want {
			t.Errorf("Tweets[%d].CreatedAt = %q, want %q", i, in.Tweets[i].CreatedAt, want)
		}
	}
	if in.Tweets[0].Text != "RT [[@hoge]]: tweet2" {
		t.Errorf("Tweets[0].Text = %q", in.Tweets[0].Text)
	}
	if in.Tweets[1].Text != "[[@hoge]] tweet3\n  more" {
		t.Errorf("Tweets[1].Text = %q", in.Tweets[1].Text)
	}
}

func TestNewInput_LocalZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	posts := []archive.Post{
		{CreatedAt: time.Date(2023, 3, 31, 20, 0, 0, 0, time.UTC).In(tokyo), FullText: "late"},
	}

	in, err := NewInput(posts)
	if err != nil {
		t.Fatalf("NewInput() error = %v", err)
	}
	if in.Month != "04" || in.FileCreatedAt != "2023-04-01 05:00:00" {
		t.Errorf("Month/FileCreatedAt = %q/%q, want local time", in.Month, in.FileCreatedAt)
	}
}

func TestNewInput_TieBreakFirstInInputOrder(t *testing.T) {
	same := time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC)
	posts := []archive.Post{
		{CreatedAt: same, FullText: "first"},
		{CreatedAt: same, FullText: "second"},
	}

	in, err := NewInput(posts)
	if err != nil {
		t.Fatalf("NewInput() error = %v", err)
	}
	if in.Tweets[0].Text != "first" || in.Tweets[1].Text != "second" {
		t.Errorf("equal timestamps should keep input order: %+v", in.Tweets)
	}
	if in.ID != "20230501080000000" {
		t.Errorf("ID = %q", in.ID)
	}
}

func TestNewInput_Empty(t *testing.T) {
	_, err := NewInput(nil)
	if !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("NewInput(nil) error = %v, want ErrEmptyGroup", err)
	}
}
