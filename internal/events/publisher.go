package events

import (
	"context"
	"encoding/json"
	"fmt"
)

type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
}

// RawPublisher delivers an already encoded payload to a named channel.
// Both the websocket hub and the Redis publisher implement it.
type RawPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// ChannelPublisher encodes envelopes as JSON and sends them to a single channel.
type ChannelPublisher struct {
	raw     RawPublisher
	channel string
}

func NewChannelPublisher(raw RawPublisher, channel string) *ChannelPublisher {
	return &ChannelPublisher{raw: raw, channel: channel}
}

func (p *ChannelPublisher) Publish(ctx context.Context, envelope Envelope) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.raw.Publish(ctx, p.channel, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error { return nil }
