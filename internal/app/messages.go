package app

import "time"

// TickMsg triggers one poll of the sensor.
type TickMsg time.Time
