package main

import (
	"voice-notes/cmd/vnote/cmd"
)

// @title Voice Notes API
// @version 1.0
// @description Record, transcribe, store and export voice-note translations.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cmd.Execute()
}
