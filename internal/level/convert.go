package level

import "silo-monitor.klederson.com/internal/sensor"

// ToPercent maps a distance onto a fill percentage. far is empty (0%),
// near is full (100%). Absent readings count as empty.
func ToPercent(d sensor.Distance, near, far float64) float64 {
	if !d.Valid {
		return 0
	}
	if d.CM >= far {
		return 0
	}
	if d.CM <= near {
		return 100
	}

	pct := (far - d.CM) / (far - near) * 100
	return clamp(pct, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
