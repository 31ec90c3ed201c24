package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/yourusername/school-api/internal/domain/entity"
	"github.com/yourusername/school-api/internal/domain/repository"
	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
)

const supportSystemPrompt = "You are a helpful school support assistant."

// SupportService relays visitor questions to the chat model and keeps
// a transcript of every exchange. If client is nil the feature is
// disabled and Ask fails with ErrChatNotConfigured.
type SupportService struct {
	messageRepo repository.SupportMessageRepository
	client      *openai.Client
}

// NewSupportService creates the service. Pass an empty apiKey to
// disable the assistant.
func NewSupportService(messageRepo repository.SupportMessageRepository, apiKey string) (*SupportService, error) {
	if messageRepo == nil {
		return nil, fmt.Errorf("support message repository is required")
	}

	s := &SupportService{messageRepo: messageRepo}
	if apiKey != "" {
		c := openai.NewClient(option.WithAPIKey(apiKey))
		s.client = &c
	}
	return s, nil
}

// Ask sends the visitor's message to the model and persists the
// exchange. The transcript write is best effort: a storage failure
// does not lose the reply.
func (s *SupportService) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: empty message", apperrors.ErrValidation)
	}
	if s.client == nil {
		return "", ErrChatNotConfigured
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(supportSystemPrompt),
			openai.UserMessage(message),
		},
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}

	reply := resp.Choices[0].Message.Content
	if err := s.messageRepo.Create(&entity.SupportMessage{
		UserQuery:   message,
		BotResponse: reply,
	}); err != nil {
		log.Printf("[SupportService] failed to store transcript: %v", err)
	}

	return reply, nil
}

// History returns the most recent exchanges, newest first.
func (s *SupportService) History(limit int) ([]entity.SupportMessage, error) {
	return s.messageRepo.List(limit)
}
