package sms

import "fmt"

// Message templates for the SMS escalation channel. Kept short so they fit a
// single segment.

func ShiftPublished(count int) string {
	return fmt.Sprintf("Your schedule is ready. You have %d upcoming shifts.", count)
}

func ScheduleChange(newTime string) string {
	return fmt.Sprintf("Schedule update: your shift moved to %s", newTime)
}

func SwapApproved(date, timeOfDay string) string {
	return fmt.Sprintf("Shift swap approved! You now have a shift on %s at %s", date, timeOfDay)
}

func TimeOffApproved(startDate, endDate string) string {
	return fmt.Sprintf("Time off approved: %s to %s. Enjoy!", startDate, endDate)
}

func TimeOffDenied(startDate, reason string) string {
	return fmt.Sprintf("Time off request for %s was denied. Reason: %s", startDate, reason)
}

func CalloutCoverage(role, date, timeOfDay string) string {
	return fmt.Sprintf("Coverage needed: %s on %s at %s. Can you help?", role, date, timeOfDay)
}

func ShiftReminder(role string) string {
	return fmt.Sprintf("Reminder: your %s shift starts in 30 minutes.", role)
}
