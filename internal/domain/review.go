// Package domain defines the core entities of the review desk and the
// rules that govern them, independent of storage and transport.
package domain

import (
	"strings"
	"time"
	"unicode"
)

// Response status values a review moves through.
const (
	StatusPending   = "pending"
	StatusResponded = "responded"
	StatusDraft     = "draft"
	StatusPriority  = "priority"
)

// ValidStatuses lists every status a review may hold.
var ValidStatuses = []string{StatusPending, StatusResponded, StatusDraft, StatusPriority}

// IsValidStatus reports whether s is a known review status.
func IsValidStatus(s string) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// AllowedTransitions maps each status to the statuses a response
// submission may move it to. Responded is terminal except for editing the
// published response in place.
var AllowedTransitions = map[string][]string{
	StatusPending:   {StatusDraft, StatusResponded},
	StatusDraft:     {StatusDraft, StatusResponded},
	StatusPriority:  {StatusDraft, StatusResponded},
	StatusResponded: {StatusResponded},
}

// CanTransitionTo reports whether a review in status from may move to.
func CanTransitionTo(from, to string) bool {
	for _, allowed := range AllowedTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// Review is a customer review pulled from an external platform.
type Review struct {
	ID               int64      `json:"id"`
	CustomerName     string     `json:"customerName"`
	CustomerInitials string     `json:"customerInitials"`
	Rating           int        `json:"rating"`
	Content          string     `json:"content"`
	DatePosted       time.Time  `json:"datePosted"`
	Status           string     `json:"status"`
	Response         *string    `json:"response"`
	ResponseDate     *time.Time `json:"responseDate"`
	Platform         string     `json:"platform"`
	Category         *string    `json:"category"`
	SourceID         *string    `json:"sourceId"`
}

// Initials returns the uppercase initials of the customer name, at most
// two runes, for avatar rendering.
func (r *Review) Initials() string {
	parts := strings.Fields(r.CustomerName)
	var b strings.Builder
	for i, p := range parts {
		if i == 2 {
			break
		}
		b.WriteRune(unicode.ToUpper([]rune(p)[0]))
	}
	return b.String()
}

// HasResponse reports whether a non-empty response is attached.
func (r *Review) HasResponse() bool {
	return r.Response != nil && strings.TrimSpace(*r.Response) != ""
}

// ReviewWithResponses is a review joined with its recorded response
// history, oldest first. Responses is never nil.
type ReviewWithResponses struct {
	Review
	Responses []Response `json:"responses"`
}
