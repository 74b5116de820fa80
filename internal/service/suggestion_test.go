package service

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type mockChatCompleter struct {
	mock.Mock
}

func (m *mockChatCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestSuggestionService_Generate_ParsesModelOutput(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(1)).Return(pendingReview(1), nil)

	client := new(mockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Model == openai.GPT4o && req.ResponseFormat.Type == openai.ChatCompletionResponseFormatTypeJSONObject
	})).Return(completionWith(`{"suggestions":[{"suggestion":"Thank you, Sarah!","tone":"grateful","confidence":0.9}]}`), nil)

	svc := NewSuggestionService(reviews, client, "", testLogger())
	got, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Thank you, Sarah!", got[0].Suggestion)
	assert.Equal(t, domain.ToneGrateful, got[0].Tone)
	assert.Equal(t, 0.9, got[0].Confidence)
}

func TestSuggestionService_Generate_FallsBackOnModelFailure(t *testing.T) {
	review := pendingReview(1)
	review.Rating = 1
	review.CustomerName = "Mike Johnson"

	reviews := new(mockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(1)).Return(review, nil)

	client := new(mockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, assert.AnError)

	svc := NewSuggestionService(reviews, client, "gpt-4o", testLogger())
	got, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ToneApologetic, got[0].Tone)
	assert.Contains(t, got[0].Suggestion, "Mike Johnson")
}

func TestSuggestionService_Generate_FallsBackOnMalformedJSON(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(1)).Return(pendingReview(1), nil)

	client := new(mockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith("not json"), nil)

	svc := NewSuggestionService(reviews, client, "gpt-4o", testLogger())
	got, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	// rating 5 fallback bucket
	require.Len(t, got, 2)
	assert.Equal(t, domain.ToneGrateful, got[0].Tone)
}

func TestSuggestionService_Generate_ReviewNotFound(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.NotFound("review", 42))

	svc := NewSuggestionService(reviews, new(mockChatCompleter), "gpt-4o", testLogger())
	_, err := svc.Generate(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFallbackSuggestions_Buckets(t *testing.T) {
	low := fallbackSuggestions(2, "Sam")
	assert.Equal(t, domain.ToneApologetic, low[0].Tone)

	mid := fallbackSuggestions(3, "Sam")
	assert.Equal(t, domain.ToneProfessional, mid[0].Tone)

	high := fallbackSuggestions(5, "Sam")
	assert.Equal(t, domain.ToneGrateful, high[0].Tone)
}

func TestSuggestionService_Improve_ReturnsOriginalOnFailure(t *testing.T) {
	client := new(mockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, assert.AnError)

	svc := NewSuggestionService(new(mockReviewRepo), client, "gpt-4o", testLogger())
	got, err := svc.Improve(context.Background(), "original text", "review content", 4)
	require.NoError(t, err)
	assert.Equal(t, "original text", got)
}

func TestSuggestionService_Improve_ParsesImprovedText(t *testing.T) {
	client := new(mockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completionWith(`{"improved_response":"polished text"}`), nil)

	svc := NewSuggestionService(new(mockReviewRepo), client, "gpt-4o", testLogger())
	got, err := svc.Improve(context.Background(), "original text", "review content", 4)
	require.NoError(t, err)
	assert.Equal(t, "polished text", got)
}
