package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	payload := SimStatePayload{
		AngleDeg: 123.5,
		Speed:    30,
		Running:  true,
	}

	msg, err := NewEnvelope(TypeSimState, payload)
	require.NoError(t, err)

	var env Envelope
	err = json.Unmarshal(msg, &env)
	require.NoError(t, err)

	assert.Equal(t, TypeSimState, env.Type)

	var parsed SimStatePayload
	err = json.Unmarshal(env.Payload, &parsed)
	require.NoError(t, err)

	assert.Equal(t, 123.5, parsed.AngleDeg)
	assert.Equal(t, 30.0, parsed.Speed)
	assert.True(t, parsed.Running)
}

func TestNewEnvelope_NoPayload(t *testing.T) {
	msg, err := NewEnvelope(TypeSimStart, nil)
	require.NoError(t, err)

	var env Envelope
	err = json.Unmarshal(msg, &env)
	require.NoError(t, err)

	assert.Equal(t, TypeSimStart, env.Type)
	assert.Nil(t, env.Payload)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.ClientCount())

	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())

	// Unregistering twice must not panic or double-close
	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	c1 := &Client{hub: hub, send: make(chan []byte, 4)}
	c2 := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c1)
	hub.Register(c2)

	hub.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), <-c1.send)
	assert.Equal(t, []byte("hello"), <-c2.send)
}

func TestHub_BroadcastSkipsFullClient(t *testing.T) {
	hub := NewHub()
	full := &Client{hub: hub, send: make(chan []byte)}
	ok := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(full)
	hub.Register(ok)

	// Must not block on the unbuffered client
	hub.Broadcast([]byte("x"))
	assert.Equal(t, []byte("x"), <-ok.send)
}
