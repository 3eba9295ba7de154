package generator

import "errors"

// ErrGenerationFailed indicates Config.MaxAttempts candidate boards were
// tried and none reached a unique solution.
var ErrGenerationFailed = errors.New("generator: exhausted attempts without a uniquely-solvable board")

// errFloodFillStalled is internal: it signals a full pass colored no
// cell while zero-colored cells remain, so Generate should discard this
// candidate and try a fresh seed rather than loop forever.
var errFloodFillStalled = errors.New("generator: flood fill stalled")
