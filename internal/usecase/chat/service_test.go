package chat

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/chat"
	"jobmatch/internal/domain/match"
)

type stubMatches struct {
	match match.Match
	err   error
}

func (s *stubMatches) CreateIfAbsent(_ context.Context, a, b uuid.UUID) (match.Match, bool, error) {
	return match.Match{}, false, errors.New("not implemented")
}

func (s *stubMatches) GetByID(_ context.Context, id uuid.UUID) (match.Match, error) {
	if s.err != nil {
		return match.Match{}, s.err
	}
	if s.match.ID != id {
		return match.Match{}, match.ErrNotFound
	}
	return s.match, nil
}

func (s *stubMatches) ListByUser(_ context.Context, _ uuid.UUID) ([]match.Match, error) {
	return nil, nil
}

// memMessages stores appended messages and lists them the way the database
// does, ascending by created_at with id as the tiebreaker.
type memMessages struct {
	msgs      []chat.Message
	appendErr error
	clock     time.Time
}

func (m *memMessages) Append(_ context.Context, msg chat.Message) (chat.Message, error) {
	if m.appendErr != nil {
		return chat.Message{}, m.appendErr
	}
	msg.ID = uuid.New()
	msg.CreatedAt = m.clock
	m.msgs = append(m.msgs, msg)
	return msg, nil
}

func (m *memMessages) ListByMatch(_ context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	var out []chat.Message
	for _, msg := range m.msgs {
		if msg.MatchID == matchID {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

type recordingFeed struct {
	notified []chat.Message
}

func (f *recordingFeed) NotifyMessage(m chat.Message) {
	f.notified = append(f.notified, m)
}

func testMatch() (match.Match, uuid.UUID, uuid.UUID) {
	a, b := uuid.New(), uuid.New()
	ua, ub := match.CanonicalPair(a, b)
	return match.Match{ID: uuid.New(), UserAID: ua, UserBID: ub, CreatedAt: time.Now().UTC()}, a, b
}

func TestService_Send_RejectsBlankContent(t *testing.T) {
	m, a, _ := testMatch()
	svc := NewService(&stubMatches{match: m}, &memMessages{}, nil)

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), a, m.ID, tt.content)
			if !errors.Is(err, ErrEmptyMessage) {
				t.Fatalf("expected ErrEmptyMessage, got %v", err)
			}
		})
	}
}

func TestService_Send_RejectsNonParticipant(t *testing.T) {
	m, _, _ := testMatch()
	store := &memMessages{clock: time.Now().UTC()}
	svc := NewService(&stubMatches{match: m}, store, nil)

	_, err := svc.Send(context.Background(), uuid.New(), m.ID, "hello")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if len(store.msgs) != 0 {
		t.Fatalf("unauthorized send must not persist anything")
	}
}

func TestService_Send_UnknownMatch(t *testing.T) {
	m, a, _ := testMatch()
	svc := NewService(&stubMatches{match: m}, &memMessages{}, nil)

	_, err := svc.Send(context.Background(), a, uuid.New(), "hello")
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestService_Send_AppendsAndNotifies(t *testing.T) {
	m, a, _ := testMatch()
	store := &memMessages{clock: time.Now().UTC()}
	feed := &recordingFeed{}
	svc := NewService(&stubMatches{match: m}, store, feed)

	msg, err := svc.Send(context.Background(), a, m.ID, "  hello there  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msg.Content != "hello there" {
		t.Fatalf("expected trimmed content, got %q", msg.Content)
	}
	if msg.ID == uuid.Nil {
		t.Fatalf("expected stored message id")
	}
	if len(feed.notified) != 1 || feed.notified[0].ID != msg.ID {
		t.Fatalf("expected feed notification for the stored message, got %v", feed.notified)
	}
}

func TestService_Send_AppendFailureSkipsFeed(t *testing.T) {
	m, a, _ := testMatch()
	feed := &recordingFeed{}
	svc := NewService(&stubMatches{match: m}, &memMessages{appendErr: errors.New("connection reset")}, feed)

	_, err := svc.Send(context.Background(), a, m.ID, "hello")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if len(feed.notified) != 0 {
		t.Fatalf("failed append must not reach the feed")
	}
}

func TestService_History_OrderedOldestFirst(t *testing.T) {
	m, a, b := testMatch()
	store := &memMessages{}
	svc := NewService(&stubMatches{match: m}, store, nil)

	base := time.Now().UTC()
	for i, body := range []string{"first", "second", "third"} {
		store.clock = base.Add(time.Duration(i) * time.Second)
		sender := a
		if i%2 == 1 {
			sender = b
		}
		if _, err := svc.Send(context.Background(), sender, m.ID, body); err != nil {
			t.Fatalf("send %q: %v", body, err)
		}
	}

	got, err := svc.History(context.Background(), b, m.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Content != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got[i].Content)
		}
	}
}

func TestService_History_RejectsNonParticipant(t *testing.T) {
	m, _, _ := testMatch()
	svc := NewService(&stubMatches{match: m}, &memMessages{}, nil)

	_, err := svc.History(context.Background(), uuid.New(), m.ID)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}
