package bookings

import "time"

// TimeSlots is the fixed set of daily visit slots offered on the public
// site. Slots are labels, not availability: overlapping bookings are
// accepted and sorted out by the operator.
var TimeSlots = []string{"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}

const UpcomingWindowDays = 14

// UpcomingDates returns the next n calendar days starting tomorrow, at
// midnight in loc. The public booking wizard renders these as date chips.
func UpcomingDates(now time.Time, n int, loc *time.Location) []time.Time {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	dates := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}
