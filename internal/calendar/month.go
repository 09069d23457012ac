package calendar

import (
	"time"

	"github.com/maheshrc27/contentops/internal/models"
)

type Entry struct {
	ScheduleID string   `json:"scheduleId"`
	ProjectID  string   `json:"projectId"`
	Platform   string   `json:"platform"`
	Frequency  string   `json:"frequency"`
	Times      []string `json:"times"`
}

// Post is a content or video item placed on the calendar by its posting time
// or, once published, its posted time.
type Post struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProjectID string    `json:"projectId"`
	Status    string    `json:"status"`
	Platforms []string  `json:"platforms"`
	Idea      string    `json:"idea"`
	At        time.Time `json:"at"`
}

type Day struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Entries []Entry `json:"entries"`
	Posts   []Post  `json:"posts"`
}

// Month builds one Day per calendar day of the given month in loc. Inactive
// schedules are skipped.
func Month(year int, month time.Month, loc *time.Location, schedules []*models.Schedule, posts []Post) []Day {
	if loc == nil {
		loc = time.UTC
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	var days []Day
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		day := Day{
			Date:    d.Format("2006-01-02"),
			Weekday: WeekdayName(d.Weekday()),
			Entries: []Entry{},
			Posts:   []Post{},
		}

		for _, s := range schedules {
			if s == nil || !s.IsActive {
				continue
			}
			if ok, times := Matches(*s, d); ok {
				day.Entries = append(day.Entries, Entry{
					ScheduleID: s.ID,
					ProjectID:  s.ProjectID,
					Platform:   s.Platform,
					Frequency:  s.Frequency,
					Times:      times,
				})
			}
		}

		for _, p := range posts {
			if sameDay(p.At.In(loc), d) {
				day.Posts = append(day.Posts, p)
			}
		}

		days = append(days, day)
	}
	return days
}

// ContentPost places a content item, preferring postedAt over postingTime.
func ContentPost(item *models.ContentItem) (Post, bool) {
	at, ok := placement(&item.ItemBase)
	if !ok {
		return Post{}, false
	}
	return Post{
		ID:        item.ID,
		Type:      models.ItemTypeContent,
		ProjectID: item.ProjectID,
		Status:    item.Status,
		Platforms: []string{item.Platform},
		Idea:      item.Idea,
		At:        at,
	}, true
}

func VideoPost(item *models.VideoItem) (Post, bool) {
	at, ok := placement(&item.ItemBase)
	if !ok {
		return Post{}, false
	}
	return Post{
		ID:        item.ID,
		Type:      models.ItemTypeVideo,
		ProjectID: item.ProjectID,
		Status:    item.Status,
		Platforms: item.Platforms,
		Idea:      item.Idea,
		At:        at,
	}, true
}

func placement(item *models.ItemBase) (time.Time, bool) {
	if item.PostedAt != nil {
		return *item.PostedAt, true
	}
	if item.PostingTime != nil {
		return *item.PostingTime, true
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
