package ws

import (
	"power_budget/internal/logger"
	"power_budget/internal/simulator"
)

// Bridge implements simulator.Callback and broadcasts replay events to
// the WebSocket hub.
type Bridge struct {
	hub *Hub
	log *logger.Logger
}

func NewBridge(hub *Hub, log *logger.Logger) *Bridge {
	return &Bridge{hub: hub, log: log}
}

func (b *Bridge) OnState(s simulator.State) {
	msg, err := NewEnvelope(TypeSimState, SimStateFromReplay(s))
	if err != nil {
		b.log.Errorw("marshaling sim state", "err", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnSample(s simulator.Sample) {
	msg, err := NewEnvelope(TypeOrbitSample, s)
	if err != nil {
		b.log.Errorw("marshaling orbit sample", "err", err)
		return
	}
	b.hub.Broadcast(msg)
}

func (b *Bridge) OnSummary(s simulator.Summary) {
	msg, err := NewEnvelope(TypeOrbitSummary, s)
	if err != nil {
		b.log.Errorw("marshaling orbit summary", "err", err)
		return
	}
	b.hub.Broadcast(msg)
}
