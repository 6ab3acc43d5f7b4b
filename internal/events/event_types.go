package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventEmailVerified          EventType = "email_verified"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventPasswordChanged        EventType = "password_changed"
	EventTestResultRecorded     EventType = "test_result_recorded"
)

// Event represents a domain event emitted by services. Subject is the
// account email the event concerns.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MailTokenPayload carries a link token for the notifier.
type MailTokenPayload struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TestResultPayload describes a recorded result.
type TestResultPayload struct {
	TestID    int64  `json:"test_id"`
	PatientID int64  `json:"patient_id"`
	Result    string `json:"result"`
}
