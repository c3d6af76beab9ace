package scoreboard

import "strings"

const finalStatus = "Final"

// DeriveStatus turns the feed's status text and game clock into the line
// shown under the score. Leading zeros are trimmed from the clock as text;
// the clock is never parsed as a duration.
func DeriveStatus(statusText, clock string) string {
	if statusText == finalStatus {
		return finalStatus
	}
	return statusText + "  " + strings.TrimLeft(clock, "0")
}
