package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobmatch/internal/domain/chat"
	"jobmatch/internal/domain/match"
)

var (
	ErrEmptyMessage  = errors.New("empty message")
	ErrMatchNotFound = errors.New("match not found")
	ErrNotAuthorized = errors.New("not a participant of this match")
	ErrInternal      = errors.New("internal error")
)

// Feed receives every appended message for live delivery to subscribers.
type Feed interface {
	NotifyMessage(m chat.Message)
}

type Service struct {
	matches  match.Repository
	messages chat.Repository
	feed     Feed
}

func NewService(matches match.Repository, messages chat.Repository, feed Feed) *Service {
	return &Service{matches: matches, messages: messages, feed: feed}
}

// History returns the match's messages ascending by created_at. Only the two
// participants may read it.
func (s *Service) History(ctx context.Context, userID, matchID uuid.UUID) ([]chat.Message, error) {
	if _, err := s.authorize(ctx, userID, matchID); err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, ErrInternal
	}
	return msgs, nil
}

// Send validates and appends a message, then hands it to the live feed.
// Delivery to the other participant happens only through the feed; the sender
// gets the stored message back in the response.
func (s *Service) Send(ctx context.Context, userID, matchID uuid.UUID, content string) (chat.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	if _, err := s.authorize(ctx, userID, matchID); err != nil {
		return chat.Message{}, err
	}

	msg, err := s.messages.Append(ctx, chat.Message{
		MatchID:  matchID,
		SenderID: userID,
		Content:  content,
	})
	if err != nil {
		return chat.Message{}, ErrInternal
	}

	if s.feed != nil {
		s.feed.NotifyMessage(msg)
	}

	return msg, nil
}

func (s *Service) authorize(ctx context.Context, userID, matchID uuid.UUID) (match.Match, error) {
	m, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, match.ErrNotFound) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, ErrInternal
	}
	if !m.Involves(userID) {
		return match.Match{}, ErrNotAuthorized
	}
	return m, nil
}
