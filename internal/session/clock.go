package session

import "time"

// nowFn is a test seam for the expiry check.
var nowFn = time.Now
