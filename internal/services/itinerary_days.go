package services

import (
	"time"

	"tripplanner/internal/utils"
)

// ItineraryDays lists one local-midnight date per day from start through end,
// both ends included. Time of day and zone are dropped first. A range where
// start is not strictly before end yields no days.
func ItineraryDays(start, end time.Time) []time.Time {
	from := utils.StartOfDay(start)
	to := utils.StartOfDay(end)
	if !from.Before(to) {
		return nil
	}

	diff := utils.DaysBetween(from, to)
	days := make([]time.Time, 0, diff+1)
	for i := 0; i <= diff; i++ {
		days = append(days, from.AddDate(0, 0, i))
	}
	return days
}
