package mocks

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of discord.Client
type Client struct {
	mock.Mock
}

func (m *Client) MessagesAfter(ctx context.Context, channelID, afterID string, limit int) ([]*discordgo.Message, error) {
	args := m.Called(ctx, channelID, afterID, limit)
	if msgs, ok := args.Get(0).([]*discordgo.Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}
