package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRaw struct {
	channel string
	payload []byte
	err     error
}

func (r *recordingRaw) Publish(_ context.Context, channel string, payload []byte) error {
	r.channel = channel
	r.payload = payload
	return r.err
}

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope(EventTypeUserDeleted, "abc", map[string]string{"id": "abc"})
	require.NoError(t, err)

	assert.Equal(t, EventTypeUserDeleted, env.EventType)
	assert.Equal(t, AggregateTypeUser, env.AggregateType)
	assert.Equal(t, "abc", env.AggregateID)
	assert.False(t, env.OccurredAt.IsZero())
	assert.JSONEq(t, `{"id":"abc"}`, string(env.Payload))
}

func TestNewEnvelopeRejectsUnencodablePayload(t *testing.T) {
	_, err := NewEnvelope(EventTypeUserRegistered, "abc", make(chan int))
	assert.Error(t, err)
}

func TestChannelPublisherEncodesEnvelope(t *testing.T) {
	raw := &recordingRaw{}
	pub := NewChannelPublisher(raw, DirectoryChannel)

	env, err := NewEnvelope(EventTypeUserRegistered, "abc", map[string]string{"id": "abc"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(context.Background(), env))

	assert.Equal(t, DirectoryChannel, raw.channel)

	var decoded Envelope
	require.NoError(t, json.Unmarshal(raw.payload, &decoded))
	assert.Equal(t, EventTypeUserRegistered, decoded.EventType)
	assert.Equal(t, "abc", decoded.AggregateID)
}

func TestChannelPublisherWrapsRawError(t *testing.T) {
	boom := errors.New("boom")
	pub := NewChannelPublisher(&recordingRaw{err: boom}, DirectoryChannel)

	err := pub.Publish(context.Background(), Envelope{EventType: EventTypeUserDeleted})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), DirectoryChannel)
}
