package vault

import "time"

// timeNow is a test seam for wall-clock time used by code generation.
var timeNow = time.Now
