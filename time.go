package hawk

import "time"

// nowFunc is overridden in tests to pin the clock.
var nowFunc = time.Now
