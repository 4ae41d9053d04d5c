package dto

import "fmt"

const (
	MessageRunning  = "Timezone bot running"
	MessageUsage    = "Usage: !tzset Europe/London"
	MessageNoneSet  = "No users have set a timezone yet."
	exampleTimezone = "Example: Europe/London or America/New_York"
)

func MessageInvalidTimezone(user string) string {
	return fmt.Sprintf("%s, invalid timezone. %s", user, exampleTimezone)
}

func MessageSaved(user, tz string) string {
	return fmt.Sprintf("%s, your timezone (%s) has been saved ✅", user, tz)
}

func MessageNotSet(user string) string {
	return user + " has not set a timezone."
}

func MessageLocalTime(user, tz, now string) string {
	return fmt.Sprintf("The local time for %s (%s) is %s ⏰", user, tz, now)
}

func MessageCleared(user string) string {
	return user + ", your timezone has been cleared 🗑️"
}
