package library

// Package library performs the one-shot startup scan of the audio directory.
// Every file under the root becomes a model.Track; files with a playable
// extension are selectable, the rest are reported as unsupported.
