package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/intelligence"
	"github.com/alexanderramin/krisis/internal/repository"
)

// ErrMessageTooShort is returned for chat messages under 2 characters
// after trimming. This is the only chat input treated as invalid; an empty
// dataset or an unmatched question is answered, not rejected.
var ErrMessageTooShort = errors.New("message must be at least 2 characters")

type chatService struct {
	batches repository.BatchRepo
}

// NewChatService wires the intent resolver to batch storage.
func NewChatService(batches repository.BatchRepo) ChatService {
	return &chatService{batches: batches}
}

func (s *chatService) Ask(ctx context.Context, req contract.ChatRequest) (*contract.ChatReply, error) {
	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) < 2 {
		return nil, ErrMessageTooShort
	}

	batch, err := s.batches.Latest(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading latest batch: %w", err)
	}

	// A missing batch is answered with the fixed no-dataset reply.
	return &contract.ChatReply{Text: intelligence.Resolve(message, batch)}, nil
}
