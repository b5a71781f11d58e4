package domain

// Kind identifies a telemetry series.
type Kind string

// Supported telemetry kinds.
const (
	KindSleep     Kind = "sleep"
	KindReadiness Kind = "readiness"
	KindActivity  Kind = "activity"
	KindSpO2      Kind = "spo2"
	KindHeartRate Kind = "heart_rate"
)

// AllKinds lists every supported kind in sync order.
func AllKinds() []Kind {
	return []Kind{KindSleep, KindReadiness, KindActivity, KindSpO2, KindHeartRate}
}

// IsValid checks whether the kind is one of the supported series.
func (k Kind) IsValid() bool {
	switch k {
	case KindSleep, KindReadiness, KindActivity, KindSpO2, KindHeartRate:
		return true
	}
	return false
}

// String returns the wire representation of the kind.
func (k Kind) String() string {
	return string(k)
}
