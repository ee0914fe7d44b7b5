package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"power_budget/internal/config"
	"power_budget/internal/logger"
	"power_budget/internal/simulator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and routes client messages to
// the replay engine.
type Handler struct {
	hub    *Hub
	replay *simulator.Replay
	cfg    config.Config
	log    *logger.Logger
}

func NewHandler(hub *Hub, replay *simulator.Replay, cfg config.Config, log *logger.Logger) *Handler {
	return &Handler{hub: hub, replay: replay, cfg: cfg, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade", "err", err)
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	h.sendDataLoaded(client)
	h.sendSimState(client)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnw("websocket read", "err", err)
			}
			return
		}

		h.handleMessage(msg)
	}
}

func (h *Handler) handleMessage(msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.log.Warnw("invalid message", "err", err)
		return
	}

	switch env.Type {
	case TypeSimStart:
		h.replay.Start()

	case TypeSimPause:
		h.replay.Pause()

	case TypeSimSetSpeed:
		var p SetSpeedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Warnw("invalid set_speed payload", "err", err)
			return
		}
		h.replay.SetSpeed(p.Speed)

	case TypeSimSeek:
		var p SeekPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Warnw("invalid seek payload", "err", err)
			return
		}
		h.replay.Seek(p.AngleDeg)

	default:
		h.log.Debugw("unknown message type", "type", env.Type)
	}
}

func (h *Handler) sendDataLoaded(c *Client) {
	subsystems := make([]SubsystemInfo, 0, len(h.cfg.Subsystems))
	for _, s := range h.cfg.Subsystems {
		subsystems = append(subsystems, SubsystemInfo{
			ID:      string(s.ID),
			Name:    s.Name(),
			IdleMW:  s.IdleMW,
			PeakMW:  s.PeakMW,
			Enabled: s.Enabled,
		})
	}

	payload := DataLoadedPayload{
		PeriodMin:   h.cfg.Orbit.PeriodMin,
		StepDeg:     h.cfg.Orbit.StepDeg,
		Steps:       h.replay.Result().Steps(),
		PanelPeakMW: h.cfg.Panel.PeakMW,
		CapacityMAh: h.cfg.Battery.CapacityMAh,
		BatteryV:    h.cfg.Battery.VoltageV,
		Subsystems:  subsystems,
	}

	msg, err := NewEnvelope(TypeDataLoaded, payload)
	if err != nil {
		h.log.Errorw("marshaling data loaded", "err", err)
		return
	}
	c.send <- msg
}

func (h *Handler) sendSimState(c *Client) {
	msg, err := NewEnvelope(TypeSimState, SimStateFromReplay(h.replay.State()))
	if err != nil {
		h.log.Errorw("marshaling sim state", "err", err)
		return
	}
	c.send <- msg
}
