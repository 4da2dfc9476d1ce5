package history

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memHistoryRepo struct {
	conversations map[string]*Conversation
	messages      map[string][]*Message
	nextConv      int
	nextMsg       int64
}

func newMemHistoryRepo() *memHistoryRepo {
	return &memHistoryRepo{
		conversations: make(map[string]*Conversation),
		messages:      make(map[string][]*Message),
	}
}

func (r *memHistoryRepo) CreateConversation(_ context.Context, c *Conversation) error {
	r.nextConv++
	c.ID = fmt.Sprintf("conv-%d", r.nextConv)
	cp := *c
	r.conversations[c.ID] = &cp
	return nil
}

func (r *memHistoryRepo) GetConversation(_ context.Context, id string) (*Conversation, error) {
	c, ok := r.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memHistoryRepo) ListConversations(_ context.Context, userID string) ([]*Conversation, error) {
	var out []*Conversation
	for _, c := range r.conversations {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memHistoryRepo) RenameConversation(_ context.Context, id string, name string) error {
	c, ok := r.conversations[id]
	if !ok {
		return ErrNotFound
	}
	c.Name = name
	return nil
}

func (r *memHistoryRepo) DeleteConversation(_ context.Context, id string) error {
	if _, ok := r.conversations[id]; !ok {
		return ErrNotFound
	}
	delete(r.conversations, id)
	delete(r.messages, id)
	return nil
}

func (r *memHistoryRepo) AppendMessage(_ context.Context, m *Message) error {
	r.nextMsg++
	m.ID = r.nextMsg
	cp := *m
	r.messages[m.ConversationID] = append(r.messages[m.ConversationID], &cp)
	return nil
}

func (r *memHistoryRepo) ListMessages(_ context.Context, conversationID string) ([]*Message, error) {
	return r.messages[conversationID], nil
}

func (r *memHistoryRepo) RecentMessages(_ context.Context, conversationID string, limit int) ([]*Message, error) {
	msgs := r.messages[conversationID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func TestRecordCreatesConversation(t *testing.T) {
	repo := newMemHistoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	convID, err := svc.Record(ctx, "u1", "", "find parking near phoenix", "Here are the options...")
	require.NoError(t, err)
	require.NotEmpty(t, convID)

	c, err := repo.GetConversation(ctx, convID)
	require.NoError(t, err)
	assert.Equal(t, "find parking near phoenix", c.Name)
	assert.Equal(t, "u1", c.UserID)

	// A second turn lands in the same conversation.
	got, err := svc.Record(ctx, "u1", convID, "book slot 5", "Done!")
	require.NoError(t, err)
	assert.Equal(t, convID, got)

	msgs, err := svc.Recent(ctx, "u1", convID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "find parking near phoenix", msgs[0].UserQuery)
	assert.Equal(t, "Done!", msgs[1].AgentResponse)
}

func TestRecordRejectsForeignConversation(t *testing.T) {
	repo := newMemHistoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	convID, err := svc.Record(ctx, "u1", "", "hello", "hi")
	require.NoError(t, err)

	_, err = svc.Record(ctx, "u2", convID, "hello", "hi")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRecentWithoutConversation(t *testing.T) {
	svc := NewService(newMemHistoryRepo())

	msgs, err := svc.Recent(context.Background(), "u1", "", 5)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestRecentKeepsNewest(t *testing.T) {
	repo := newMemHistoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	convID, err := svc.Record(ctx, "u1", "", "turn 1", "reply 1")
	require.NoError(t, err)
	for i := 2; i <= 8; i++ {
		_, err := svc.Record(ctx, "u1", convID, fmt.Sprintf("turn %d", i), fmt.Sprintf("reply %d", i))
		require.NoError(t, err)
	}

	msgs, err := svc.Recent(ctx, "u1", convID, 5)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	assert.Equal(t, "turn 4", msgs[0].UserQuery)
	assert.Equal(t, "turn 8", msgs[4].UserQuery)
}

func TestRecentRejectsForeignConversation(t *testing.T) {
	repo := newMemHistoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	convID, err := svc.Record(ctx, "u1", "", "secret plans", "noted")
	require.NoError(t, err)

	msgs, err := svc.Recent(ctx, "u2", convID, 5)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, msgs)

	_, err = svc.Recent(ctx, "u1", "conv-999", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNameFromQuery(t *testing.T) {
	assert.Equal(t, "New conversation", nameFromQuery("   "))
	assert.Equal(t, "book a slot", nameFromQuery("  book   a\tslot  "))

	long := strings.Repeat("a", 80)
	assert.Len(t, nameFromQuery(long), 60)
}

func TestRenameAndDelete(t *testing.T) {
	repo := newMemHistoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	convID, err := svc.Record(ctx, "u1", "", "hello", "hi")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, convID, "u2", "stolen")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	c, err := svc.Rename(ctx, convID, "u1", "parking chat")
	require.NoError(t, err)
	assert.Equal(t, "parking chat", c.Name)

	err = svc.Delete(ctx, convID, "u2")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, convID, "u1"))

	_, _, err = svc.Get(ctx, convID, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}
