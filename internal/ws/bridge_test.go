package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power_budget/internal/logger"
	"power_budget/internal/simulator"
)

func recvEnvelope(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case msg := <-c.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(msg, &env))
		return env
	default:
		t.Fatal("no message broadcast")
		return Envelope{}
	}
}

func TestBridge_OnSample(t *testing.T) {
	hub := NewHub()
	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)

	b := NewBridge(hub, logger.Get(logger.ErrorLevel))
	b.OnSample(simulator.Sample{
		AngleDeg: 90,
		SolarMW:  220,
		LoadMW:   67.9,
		LevelPct: 51.2,
	})

	env := recvEnvelope(t, c)
	assert.Equal(t, TypeOrbitSample, env.Type)

	var s simulator.Sample
	require.NoError(t, json.Unmarshal(env.Payload, &s))
	assert.Equal(t, 90.0, s.AngleDeg)
	assert.Equal(t, 220.0, s.SolarMW)
	assert.Equal(t, 51.2, s.LevelPct)
}

func TestBridge_OnState(t *testing.T) {
	hub := NewHub()
	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)

	b := NewBridge(hub, logger.Get(logger.ErrorLevel))
	b.OnState(simulator.State{AngleDeg: 45, Speed: 30, Running: true})

	env := recvEnvelope(t, c)
	assert.Equal(t, TypeSimState, env.Type)

	var p SimStatePayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, 45.0, p.AngleDeg)
	assert.True(t, p.Running)
}

func TestBridge_OnSummary(t *testing.T) {
	hub := NewHub()
	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)

	b := NewBridge(hub, logger.Get(logger.ErrorLevel))
	b.OnSummary(simulator.Summary{GeneratedMWh: 105.2, MinLevelPct: 42.5})

	env := recvEnvelope(t, c)
	assert.Equal(t, TypeOrbitSummary, env.Type)

	var s simulator.Summary
	require.NoError(t, json.Unmarshal(env.Payload, &s))
	assert.Equal(t, 105.2, s.GeneratedMWh)
	assert.Equal(t, 42.5, s.MinLevelPct)
}
