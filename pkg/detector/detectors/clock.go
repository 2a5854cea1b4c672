package detectors

import "time"

// timeNow is the clock used by time-sensitive actions. Tests swap it for
// a fixed instant.
var timeNow = time.Now
