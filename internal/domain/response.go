package domain

import "time"

// Response tones recognized by the suggestion engine and response records.
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneApologetic   = "apologetic"
	ToneGrateful     = "grateful"
)

// Response is a recorded reply to a review. A review keeps its latest
// reply inline; Response rows preserve the full history. SentAt is set
// when the reply was actually published, and stays nil for records that
// never left draft.
type Response struct {
	ID            int64      `json:"id"`
	ReviewID      int64      `json:"reviewId"`
	Content       string     `json:"content"`
	Tone          string     `json:"tone"`
	IsAIGenerated bool       `json:"isAiGenerated"`
	SentAt        *time.Time `json:"sentAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}
