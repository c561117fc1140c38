package model

import "time"

// SendRecord is a local history entry for one sandbox send. It keeps the
// message ID around so a failed test send can be retried later even
// after it ages out of the remote log page.
type SendRecord struct {
	ID        int64     `json:"id"`
	MessageID string    `json:"message_id"`
	Provider  string    `json:"provider"`
	Recipient string    `json:"recipient"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}
