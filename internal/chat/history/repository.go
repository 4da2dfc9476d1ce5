package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateConversation(ctx context.Context, c *Conversation) error
	GetConversation(ctx context.Context, id string) (*Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*Conversation, error)
	RenameConversation(ctx context.Context, id string, name string) error
	DeleteConversation(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, m *Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*Message, error)
	// RecentMessages returns up to limit messages in chronological order,
	// keeping the newest ones.
	RecentMessages(ctx context.Context, conversationID string, limit int) ([]*Message, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) CreateConversation(ctx context.Context, c *Conversation) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO public.conversations (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		c.UserID, c.Name,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create conversation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	var c Conversation
	err := r.pool.QueryRow(ctx,
		"SELECT id, user_id, name, created_at, updated_at FROM public.conversations WHERE id = $1", id,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) ListConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		FROM public.conversations
		WHERE user_id = $1
		ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations failed: %w", err)
	}
	defer rows.Close()

	var conversations []*Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation failed: %w", err)
		}
		conversations = append(conversations, &c)
	}
	return conversations, nil
}

func (r *pgxRepository) RenameConversation(ctx context.Context, id string, name string) error {
	ct, err := r.pool.Exec(ctx,
		"UPDATE public.conversations SET name = $1, updated_at = now() WHERE id = $2", name, id)
	if err != nil {
		return fmt.Errorf("rename conversation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteConversation(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, "DELETE FROM public.conversations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete conversation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AppendMessage(ctx context.Context, m *Message) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO public.chat_messages (conversation_id, user_query, agent_response)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		m.ConversationID, m.UserQuery, m.AgentResponse,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("append chat message failed: %w", err)
	}

	// Keep the conversation's recency in sync with its newest message.
	_, err = r.pool.Exec(ctx,
		"UPDATE public.conversations SET updated_at = now() WHERE id = $1", m.ConversationID)
	if err != nil {
		return fmt.Errorf("touch conversation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListMessages(ctx context.Context, conversationID string) ([]*Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, conversation_id, user_query, agent_response, created_at
		FROM public.chat_messages
		WHERE conversation_id = $1
		ORDER BY id ASC`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages failed: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *pgxRepository) RecentMessages(ctx context.Context, conversationID string, limit int) ([]*Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, conversation_id, user_query, agent_response, created_at
		FROM (
			SELECT id, conversation_id, user_query, agent_response, created_at
			FROM public.chat_messages
			WHERE conversation_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id ASC`, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent chat messages failed: %w", err)
	}
	defer rows.Close()
	return scanMessages(rows)
}

func scanMessages(rows pgx.Rows) ([]*Message, error) {
	var messages []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.UserQuery, &m.AgentResponse, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message failed: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, nil
}
