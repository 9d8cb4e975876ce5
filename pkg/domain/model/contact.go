package model

import "time"

// ContactStatusNew is the initial status of every submission. Status
// progression after insert is an external concern.
const ContactStatusNew = "new"

// DefaultSubject is used when a submission omits the subject field
const DefaultSubject = "No Subject"

// ContactSubmission is one contact-form submission. It is written once and
// never mutated by this system.
type ContactSubmission struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
	IPAddress string
	Status    string
}
