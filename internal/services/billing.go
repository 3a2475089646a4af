package services

import (
	"time"

	"github.com/ashwkun/dred-backend/internal/dto"
)

const defaultDueOffsetDays = 15

// BillingStatus projects a card's current billing cycle from its fixed
// monthly generation day and due-date offset. It is a read-time computation:
// nothing is stored, and absent configuration degrades to the none state
// instead of an error. today's time-of-day is ignored; the cycle math is
// calendar-day based.
func BillingStatus(today time.Time, billGenDay, dueOffsetDays int, lastPaidCycleKey string) dto.BillingCycleStatus {
	if billGenDay <= 0 || dueOffsetDays <= 0 {
		return dto.BillingCycleStatus{State: dto.BillingStateNone}
	}

	today = truncateToDay(today)
	start := cycleStart(today, billGenDay)
	due := dueDate(start, dueOffsetDays)
	key := cycleKey(start)

	status := dto.BillingCycleStatus{
		State:      dto.BillingStateNone,
		CycleStart: start.Format(txDateLayout),
		DueDate:    due.Format(txDateLayout),
		CycleKey:   key,
	}
	switch {
	case lastPaidCycleKey == key:
		// Already settled; dates stay populated for display.
	case today.After(due):
		status.State = dto.BillingStateOverdue
	case !today.Before(start):
		status.State = dto.BillingStateOpen
	}
	return status
}

// cycleStart resolves the current cycle's generation date. The nominal
// generation day is clamped to the length of the month it lands in, so a
// day-31 bill generates on the 28th (or 29th) in February.
func cycleStart(today time.Time, billGenDay int) time.Time {
	candidate := clampToMonth(today.Year(), today.Month(), billGenDay, today.Location())
	if !today.Before(candidate) {
		return candidate
	}
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	lastOfPrev := firstOfMonth.AddDate(0, 0, -1)
	return clampToMonth(lastOfPrev.Year(), lastOfPrev.Month(), billGenDay, today.Location())
}

func dueDate(start time.Time, offsetDays int) time.Time {
	if offsetDays <= 0 {
		offsetDays = defaultDueOffsetDays
	}
	return start.AddDate(0, 0, offsetDays)
}

func cycleKey(start time.Time) string {
	return start.Format("2006-01")
}

// clampToMonth places day within year/month, pulling it back to the last
// valid day when the month is shorter.
func clampToMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := daysInMonth(year, month)
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalises to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
