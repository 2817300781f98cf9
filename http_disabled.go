//go:build !http_enabled

package main

import (
	"github.com/google/uuid"
)

// The regular build never talks to the network. Build with the http_enabled
// tag to send playthroughs to the server.

func InitializeIdInDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID) {
}

func UploadDataToDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID, data []byte) {
}
