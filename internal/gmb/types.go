// Package gmb talks to the Google My Business API: OAuth authorization,
// account and location discovery, review listing, and review replies.
package gmb

import "time"

// Account is a GMB account visible to the authorized user.
type Account struct {
	Name        string `json:"name"`
	AccountName string `json:"accountName"`
	Type        string `json:"type"`
	Role        string `json:"role"`
}

// Location is a business location under an account.
type Location struct {
	Name         string `json:"name"`
	LocationName string `json:"locationName"`
	PrimaryPhone string `json:"primaryPhone,omitempty"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`
}

// Reviewer identifies the author of a platform review.
type Reviewer struct {
	DisplayName     string `json:"displayName"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

// ReviewReply is the business's published reply on the platform.
type ReviewReply struct {
	Comment    string    `json:"comment"`
	UpdateTime time.Time `json:"updateTime"`
}

// Review is a platform review as the GMB API returns it. Name doubles as
// the stable source id used for sync deduplication.
type Review struct {
	Name       string       `json:"name"`
	ReviewID   string       `json:"reviewId"`
	Reviewer   Reviewer     `json:"reviewer"`
	StarRating string       `json:"starRating"`
	Comment    string       `json:"comment"`
	CreateTime time.Time    `json:"createTime"`
	UpdateTime time.Time    `json:"updateTime"`
	Reply      *ReviewReply `json:"reviewReply,omitempty"`
}

var starToRating = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

var ratingToStar = map[int]string{
	1: "ONE",
	2: "TWO",
	3: "THREE",
	4: "FOUR",
	5: "FIVE",
}

// StarToRating converts a GMB star enum to its numeric rating. Unknown
// values map to 0.
func StarToRating(star string) int {
	return starToRating[star]
}

// RatingToStar converts a numeric rating to the GMB star enum. Out of
// range ratings map to ONE.
func RatingToStar(rating int) string {
	if star, ok := ratingToStar[rating]; ok {
		return star
	}
	return "ONE"
}
