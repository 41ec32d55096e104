package valueobjects

import "fmt"

// Status is the verification state of a payment row. Only posted payments
// count toward the ticket's paid total.
type Status string

const (
	StatusPosted   Status = "posted"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

var validStatuses = map[Status]bool{
	StatusPosted:   true,
	StatusPending:  true,
	StatusRejected: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPosted() bool {
	return s == StatusPosted
}

func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid payment row status: %s", raw)
	}
	return s, nil
}
