package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	r := dbRow{
		startMoment:       time.Date(2025, 3, 7, 9, 5, 2, 0, time.UTC),
		user:              "ana",
		simulationVersion: 1,
		inputVersion:      2,
	}
	assert.Equal(t, "ana/20250307-090502.dodge-1-2", r.Filename())
}
