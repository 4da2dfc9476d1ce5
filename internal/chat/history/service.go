package history

import (
	"context"
	"strings"
	"unicode/utf8"
)

// conversationNameLimit caps auto-generated conversation names.
const conversationNameLimit = 60

type Service interface {
	Create(ctx context.Context, userID string, name string) (*Conversation, error)
	Get(ctx context.Context, id string, userID string) (*Conversation, []*Message, error)
	List(ctx context.Context, userID string) ([]*Conversation, error)
	Rename(ctx context.Context, id string, userID string, name string) (*Conversation, error)
	Delete(ctx context.Context, id string, userID string) error

	// Record appends a turn to a conversation, creating the conversation
	// first when conversationID is empty, and returns the conversation id.
	Record(ctx context.Context, userID string, conversationID string, userQuery, agentResponse string) (string, error)
	// Recent returns the last n turns in chronological order. The
	// conversation must belong to userID.
	Recent(ctx context.Context, userID string, conversationID string, n int) ([]*Message, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, name string) (*Conversation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	c := &Conversation{UserID: userID, Name: name}
	if err := s.repo.CreateConversation(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id string, userID string) (*Conversation, []*Message, error) {
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	messages, err := s.repo.ListMessages(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, messages, nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Conversation, error) {
	return s.repo.ListConversations(ctx, userID)
}

func (s *service) Rename(ctx context.Context, id string, userID string, name string) (*Conversation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RenameConversation(ctx, id, name); err != nil {
		return nil, err
	}
	c.Name = name
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.DeleteConversation(ctx, id)
}

func (s *service) Record(ctx context.Context, userID string, conversationID string, userQuery, agentResponse string) (string, error) {
	if conversationID == "" {
		c := &Conversation{UserID: userID, Name: nameFromQuery(userQuery)}
		if err := s.repo.CreateConversation(ctx, c); err != nil {
			return "", err
		}
		conversationID = c.ID
	} else {
		if _, err := s.owned(ctx, conversationID, userID); err != nil {
			return "", err
		}
	}

	m := &Message{
		ConversationID: conversationID,
		UserQuery:      userQuery,
		AgentResponse:  agentResponse,
	}
	if err := s.repo.AppendMessage(ctx, m); err != nil {
		return "", err
	}
	return conversationID, nil
}

func (s *service) Recent(ctx context.Context, userID string, conversationID string, n int) ([]*Message, error) {
	if conversationID == "" {
		return nil, nil
	}
	if _, err := s.owned(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	return s.repo.RecentMessages(ctx, conversationID, n)
}

func (s *service) owned(ctx context.Context, id string, userID string) (*Conversation, error) {
	c, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return c, nil
}

// nameFromQuery derives a conversation name from its opening message.
func nameFromQuery(query string) string {
	name := strings.Join(strings.Fields(strings.TrimSpace(query)), " ")
	if name == "" {
		return "New conversation"
	}
	if utf8.RuneCountInString(name) > conversationNameLimit {
		runes := []rune(name)
		name = string(runes[:conversationNameLimit])
	}
	return name
}
