package testutil

import (
	"os"
	"strconv"
	"time"
)

// EnvTimeScale names the environment variable that scales test timeouts.
// Slow CI machines can set it to a value larger than 1.
const EnvTimeScale = "KILO_TEST_TIME_SCALE"

// Scaled returns d scaled by $KILO_TEST_TIME_SCALE. A missing, malformed or
// non-positive value means a scale of 1.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * timeScale())
}

func timeScale() float64 {
	s := os.Getenv(EnvTimeScale)
	if s == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(s, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
