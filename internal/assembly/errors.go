package assembly

import "fmt"

// NotTrackedError is returned when a mention never went through TrackMentions
type NotTrackedError struct {
	MentionID string
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("mention %s is not tracked", e.MentionID)
}
