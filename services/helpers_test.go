package services

import "time"

const (
	waitFor = time.Second
	tick    = 2 * time.Millisecond
	settle  = 20 * time.Millisecond
)
