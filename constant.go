package daylog

import "time"

// Log level constants
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// Partition and line layout
const (
	// partitionFormat is the date layout of partition directories
	partitionFormat = "2006-01-02"
	// defaultTimeFormat is the wall-clock layout used in encoded lines
	defaultTimeFormat = "3:04:05 PM"
	// logExtension is appended to the final path segment
	logExtension = ".log"
	// valuesMarker precedes the values dump on error lines
	valuesMarker = "↦"
)

// Timers
const (
	// defaultFileTimeout keeps an idle file handle open between appends
	defaultFileTimeout = 5000 * time.Millisecond
	// minWaitTime is the shortest poll period used during close and in tests
	minWaitTime = 10 * time.Millisecond
)
