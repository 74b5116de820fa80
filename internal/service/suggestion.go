package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
	"github.com/utafrali/ReviewDeskGo/pkg/logger"
)

// Suggestion is one AI-drafted reply candidate with the model's confidence
// in it.
type Suggestion struct {
	Suggestion string  `json:"suggestion"`
	Tone       string  `json:"tone"`
	Confidence float64 `json:"confidence"`
}

// chatCompleter is the slice of the OpenAI client the service uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// SuggestionService drafts reply suggestions with an LLM. Model failures
// degrade to canned suggestions bucketed by rating rather than erroring,
// since a usable draft matters more than provenance.
type SuggestionService struct {
	reviews repository.ReviewRepository
	client  chatCompleter
	model   string
	logger  *slog.Logger
}

func NewSuggestionService(reviews repository.ReviewRepository, client chatCompleter, model string, l *slog.Logger) *SuggestionService {
	if model == "" {
		model = openai.GPT4o
	}
	return &SuggestionService{reviews: reviews, client: client, model: model, logger: l}
}

const suggestionSystemPrompt = "You are an expert at crafting professional, empathetic responses to customer reviews."

// Generate returns reply candidates for a review.
func (s *SuggestionService) Generate(ctx context.Context, reviewID int64) ([]Suggestion, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.complete(ctx, review)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "suggestion generation failed, using fallbacks",
			slog.Int64("review_id", reviewID), slog.String("error", err.Error()))
		return fallbackSuggestions(review.Rating, review.CustomerName), nil
	}
	return suggestions, nil
}

func (s *SuggestionService) complete(ctx context.Context, review *domain.Review) ([]Suggestion, error) {
	prompt := fmt.Sprintf(`You are a professional customer service representative responding to business reviews.

Review Details:
- Customer: %s
- Rating: %d/5 stars
- Review: %q

Generate 2-3 different response suggestions that are:
1. Professional and empathetic
2. Personalized to the customer and their specific feedback
3. Appropriate for the rating given
4. Brief but meaningful (150-200 characters each)

For ratings 1-2: Focus on apology, acknowledgment, and resolution
For ratings 3: Balance acknowledgment with improvement commitment
For ratings 4-5: Express gratitude and encourage return visits

Respond with JSON in this exact format:
{"suggestions": [{"suggestion": "response text here", "tone": "professional|friendly|apologetic|grateful", "confidence": 0.85}]}`,
		review.CustomerName, review.Rating, review.Content)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.7,
		MaxTokens:      800,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	var parsed struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, fmt.Errorf("model returned no suggestions")
	}
	return parsed.Suggestions, nil
}

// Improve rewrites a drafted response to be more polished. On model
// failure the original text is returned unchanged.
func (s *SuggestionService) Improve(ctx context.Context, response, reviewContent string, rating int) (string, error) {
	prompt := fmt.Sprintf(`Improve this review response to make it more professional, empathetic, and engaging:

Original Response: %q
Review Rating: %d/5 stars
Review Content: %q

Make the response:
- More personalized and specific
- Professional but warm
- Concise (under 200 characters)
- Appropriate for the rating

Respond with JSON in this format:
{"improved_response": "the improved response text here"}`, response, rating, reviewContent)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:          s.model,
		Messages:       []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.5,
		MaxTokens:      400,
	})
	if err != nil || len(resp.Choices) == 0 {
		logger.FromContext(ctx).WarnContext(ctx, "response improvement failed, returning original",
			slog.String("error", errString(err)))
		return response, nil
	}

	var parsed struct {
		ImprovedResponse string `json:"improved_response"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil || parsed.ImprovedResponse == "" {
		return response, nil
	}
	return parsed.ImprovedResponse, nil
}

func errString(err error) string {
	if err == nil {
		return "empty completion"
	}
	return err.Error()
}

func fallbackSuggestions(rating int, customerName string) []Suggestion {
	switch {
	case rating <= 2:
		return []Suggestion{
			{
				Suggestion: fmt.Sprintf("We sincerely apologize for not meeting your expectations, %s. Please contact us directly so we can make this right.", customerName),
				Tone:       domain.ToneApologetic,
				Confidence: 0.8,
			},
			{
				Suggestion: fmt.Sprintf("Thank you for your feedback, %s. We take your concerns seriously and would like to resolve this personally.", customerName),
				Tone:       domain.ToneProfessional,
				Confidence: 0.7,
			},
		}
	case rating == 3:
		return []Suggestion{
			{
				Suggestion: fmt.Sprintf("Thank you for your feedback, %s. We appreciate your honesty and are working to improve in the areas you mentioned.", customerName),
				Tone:       domain.ToneProfessional,
				Confidence: 0.8,
			},
			{
				Suggestion: fmt.Sprintf("We're grateful for your review, %s. Your constructive feedback helps us provide better experiences for all our customers.", customerName),
				Tone:       domain.ToneFriendly,
				Confidence: 0.7,
			},
		}
	default:
		return []Suggestion{
			{
				Suggestion: fmt.Sprintf("Thank you so much for the wonderful review, %s! We're thrilled you had such a positive experience with us.", customerName),
				Tone:       domain.ToneGrateful,
				Confidence: 0.9,
			},
			{
				Suggestion: fmt.Sprintf("We're delighted you enjoyed your visit, %s! Your kind words mean the world to our team. Hope to see you again soon!", customerName),
				Tone:       domain.ToneFriendly,
				Confidence: 0.8,
			},
		}
	}
}
