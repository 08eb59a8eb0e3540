package formater

import (
	"fmt"
	"time"
)

// CreateStreamDuration renders the time since stream start as hh:mm:ss.
func CreateStreamDuration(streamStart time.Time) string {

	streamDuration := time.Since(streamStart)

	hours := streamDuration / time.Hour
	streamDuration = streamDuration % time.Hour
	minutes := streamDuration / time.Minute
	streamDuration = streamDuration % time.Minute
	seconds := streamDuration / time.Second

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
