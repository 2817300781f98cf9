package main

// UploadPlaythroughs runs on its own goroutine and sends every playthrough it
// receives to the server. The GUI sends a clone of the playthrough each time a
// session ends, so that a run that is abandoned in the middle still leaves a
// recording of every finished session.
// A failed upload must not take the game down. The panic raised by Check is
// recovered and logged, and the next playthrough is tried.
func UploadPlaythroughs(user string, ch <-chan *Playthrough) {
	for p := range ch {
		uploadPlaythrough(user, p)
	}
}

func uploadPlaythrough(user string, p *Playthrough) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("playthrough upload failed", "id", p.Id, "err", r)
		}
	}()
	UploadDataToDbHttp(user, p.ReleaseVersion, p.SimulationVersion,
		p.InputVersion, p.Id, p.Serialize())
}
