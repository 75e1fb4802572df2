package room

import "time"

const logMessageLimit = 25

// LogMessage is a line in the table's action log
type LogMessage struct {
	HandNumber int       `json:"handNumber"`
	Message    string    `json:"message"`
	Time       time.Time `json:"time"`
}

// addLogMessage adds a log message, keeping the latest logMessageLimit messages
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessage(handNumber int, message string) {
	if message == "" {
		return
	}

	m := append(d.logMessages, LogMessage{
		HandNumber: handNumber,
		Message:    message,
		Time:       d.clock.Now(),
	})

	if count := len(m); count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}
