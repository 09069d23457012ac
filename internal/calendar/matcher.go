// Package calendar annotates calendar days with the recurring posting
// schedules that fall on them. It drives rendering only; nothing is
// triggered from here.
package calendar

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/maheshrc27/contentops/internal/models"
	"golang.org/x/text/unicode/norm"
)

const everyDay = "mỗi ngày"

var weekdayNames = map[time.Weekday][]string{
	time.Sunday:    {"chủ nhật", "cn"},
	time.Monday:    {"thứ 2", "thứ hai"},
	time.Tuesday:   {"thứ 3", "thứ ba"},
	time.Wednesday: {"thứ 4", "thứ tư"},
	time.Thursday:  {"thứ 5", "thứ năm"},
	time.Friday:    {"thứ 6", "thứ sáu"},
	time.Saturday:  {"thứ 7", "thứ bảy"},
}

// WeekdayName returns the Vietnamese name the dashboard uses for a weekday.
func WeekdayName(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "Chủ nhật"
	default:
		return "Thứ " + strconv.Itoa(int(d)+1)
	}
}

// Matches reports whether the schedule fires on day and, if so, the posting
// times listed on the schedule.
func Matches(s models.Schedule, day time.Time) (bool, []string) {
	if !matchesDay(s, day) {
		return false, nil
	}
	return true, PostingTimes(s.PostingTime)
}

func matchesDay(s models.Schedule, day time.Time) bool {
	switch normalize(s.Frequency) {
	case normalize(models.FrequencyDaily):
		return true
	case normalize(models.FrequencyWeekly):
		names := weekdayNames[day.Weekday()]
		for _, token := range splitList(s.PostingDays) {
			if token == everyDay {
				return true
			}
			for _, name := range names {
				if token == name {
					return true
				}
			}
		}
		return false
	case normalize(models.FrequencyMonthly):
		for _, token := range splitList(s.PostingDays) {
			n, ok := dayNumber(token)
			if ok && n == day.Day() {
				return true
			}
		}
		return false
	case normalize(models.FrequencyEvery3Days):
		// Counted from the first of each month, so the cadence restarts on
		// every month boundary.
		return (day.Day()-1)%3 == 0
	default:
		return false
	}
}

// PostingTimes splits a free-text time field such as "08:00, 19:30".
func PostingTimes(raw string) []string {
	times := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			times = append(times, t)
		}
	}
	return times
}

func splitList(raw string) []string {
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = normalize(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// dayNumber strips any non-digit prefix ("Ngày 15", "ngày15") and parses the
// remaining day of month.
func dayNumber(token string) (int, bool) {
	start := strings.IndexFunc(token, unicode.IsDigit)
	if start < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(token[start:]))
	if err != nil {
		return 0, false
	}
	return n, true
}

func normalize(s string) string {
	s = norm.NFC.String(s)
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
