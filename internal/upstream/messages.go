package upstream

import (
	"context"
	"fmt"

	"sellerhub-service/internal/domain/message"
)

// MessagesClient covers the /messages collection.
type MessagesClient struct {
	c *Client
}

func NewMessagesClient(c *Client) *MessagesClient {
	return &MessagesClient{c: c}
}

func (m *MessagesClient) UnreadCount(ctx context.Context, token string, userID int64) (int, error) {
	var count int
	if err := m.c.get(ctx, token, fmt.Sprintf("/messages/unread-count/%d", userID), nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (m *MessagesClient) ForUser(ctx context.Context, token string, userID int64) ([]message.Message, error) {
	var out []message.Message
	if err := m.c.get(ctx, token, fmt.Sprintf("/messages/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MessagesClient) MarkRead(ctx context.Context, token string, messageID int64) error {
	return m.c.patch(ctx, token, fmt.Sprintf("/messages/%d/read", messageID), struct{}{}, nil)
}

func (m *MessagesClient) Send(ctx context.Context, token string, req *message.SendRequest) (*message.Message, error) {
	var out message.Message
	if err := m.c.post(ctx, token, "/messages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
