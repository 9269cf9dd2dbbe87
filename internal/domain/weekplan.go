package domain

import (
	"fmt"
	"time"
)

// Weekdays returns day names in plan order, Monday first. Plan files list
// one entry per day in exactly this order.
func Weekdays() []string {
	return []string{
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	}
}

// PlanEntry assigns an activity to a single day.
type PlanEntry struct {
	Day      string
	Activity string
}

// WeekPlan is a full week of day/activity assignments, dated by the day
// it was exported.
type WeekPlan struct {
	Date    time.Time
	Entries []PlanEntry
}

// NewWeekPlan builds a plan from one activity name per weekday, in
// Weekdays order. Every day needs a non-empty activity.
func NewWeekPlan(date time.Time, picks []string) (*WeekPlan, error) {
	days := Weekdays()
	if len(picks) != len(days) {
		return nil, fmt.Errorf("expected %d activities, got %d", len(days), len(picks))
	}
	entries := make([]PlanEntry, len(days))
	for i, day := range days {
		if picks[i] == "" {
			return nil, fmt.Errorf("no activity assigned to %s", day)
		}
		entries[i] = PlanEntry{Day: day, Activity: picks[i]}
	}
	return &WeekPlan{Date: date, Entries: entries}, nil
}

// ActivityFor returns the activity assigned to the named day, or "" if
// the plan has no entry for it.
func (p *WeekPlan) ActivityFor(day string) string {
	for _, e := range p.Entries {
		if e.Day == day {
			return e.Activity
		}
	}
	return ""
}
