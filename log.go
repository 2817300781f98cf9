package main

import (
	"github.com/charmbracelet/log"
	"os"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "dodge",
})
