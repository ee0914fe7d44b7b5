package ws

import (
	"encoding/json"

	"power_budget/internal/simulator"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypeSimStart    = "sim:start"
	TypeSimPause    = "sim:pause"
	TypeSimSetSpeed = "sim:set_speed"
	TypeSimSeek     = "sim:seek"

	// Server -> Client
	TypeSimState     = "sim:state"
	TypeOrbitSample  = "orbit:sample"
	TypeOrbitSummary = "orbit:summary"
	TypeDataLoaded   = "data:loaded"
)

// Client -> Server payloads

type SetSpeedPayload struct {
	Speed float64 `json:"speed"`
}

type SeekPayload struct {
	AngleDeg float64 `json:"angle_deg"`
}

// Server -> Client payloads

type SimStatePayload struct {
	AngleDeg float64 `json:"angle_deg"`
	Speed    float64 `json:"speed"`
	Running  bool    `json:"running"`
}

type SubsystemInfo struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IdleMW  float64 `json:"idle_mw"`
	PeakMW  float64 `json:"peak_mw"`
	Enabled bool    `json:"enabled"`
}

// DataLoadedPayload describes the scenario behind the replay so a
// client can set up axes and legends before samples arrive.
type DataLoadedPayload struct {
	PeriodMin   float64         `json:"period_min"`
	StepDeg     float64         `json:"step_deg"`
	Steps       int             `json:"steps"`
	PanelPeakMW float64         `json:"panel_peak_mw"`
	CapacityMAh float64         `json:"capacity_mah"`
	BatteryV    float64         `json:"battery_v"`
	Subsystems  []SubsystemInfo `json:"subsystems"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func SimStateFromReplay(s simulator.State) SimStatePayload {
	return SimStatePayload{
		AngleDeg: s.AngleDeg,
		Speed:    s.Speed,
		Running:  s.Running,
	}
}
