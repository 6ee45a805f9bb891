// Package email provides outbound delivery of activation messages:
// an HTTP provider client and a console fallback for local development.
package email

// Message is an outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
	From    string
}
