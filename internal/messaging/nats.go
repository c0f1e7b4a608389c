package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	SubjectBookBorrowed = "library.book.borrowed"
	SubjectBookReturned = "library.book.returned"
)

// LoanEvent is the payload published when a book is borrowed or returned.
type LoanEvent struct {
	BookID   string    `json:"bookid"`
	Username string    `json:"username"`
	DueDate  time.Time `json:"duedate"`
	Fine     float64   `json:"fine,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher emits loan events to NATS. A Publisher with no connection is
// valid and drops every event, so deployments without a broker run unchanged.
type Publisher struct {
	nc *nats.Conn
}

// Connect establishes the NATS connection. An empty URL disables publishing.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		return &Publisher{}, nil
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	log.Println("Connected to NATS")
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Publish(subject string, event LoanEvent) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, payload)
}

func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
