package app

import "time"

const (
	// watcherDebounce coalesces bursts of editor writes to the document file.
	watcherDebounce = 150 * time.Millisecond

	// toastDuration controls how long a status message stays visible.
	toastDuration = 3 * time.Second

	// wheelScrollFactor divides the viewport height into native rows per notch.
	wheelScrollFactor = 10

	// supervisorBackoff controls restart backoff for the document watcher.
	supervisorBackoff = 500 * time.Millisecond

	// documentEventBuffer is the size of the document change channel.
	documentEventBuffer = 8
)
