package constants

import "time"

// Audio defaults
const (
	AudioSampleRate    = 44100
	AudioMasterVolume  = 0.5
	AudioBufferLatency = 100 * time.Millisecond
)

// Eat: two rising sine notes
const (
	EatSoundNoteDuration = 60 * time.Millisecond
	EatSoundAttack       = 5 * time.Millisecond
	EatSoundRelease      = 30 * time.Millisecond
	EatSoundFreqLow      = 659.25 // E5
	EatSoundFreqHigh     = 987.77 // B5
)

// Crash: noise burst over a low square
const (
	CrashSoundDuration = 350 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 250 * time.Millisecond
	CrashSoundFreq     = 110.0
)

// Pause toggle: short click
const (
	PauseSoundDuration = 40 * time.Millisecond
	PauseSoundAttack   = 2 * time.Millisecond
	PauseSoundRelease  = 20 * time.Millisecond
	PauseSoundFreq     = 440.0
)

// Round start: three-note arpeggio
const (
	StartSoundNoteDuration = 70 * time.Millisecond
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 35 * time.Millisecond
)

// StartSoundFreqs are C5, E5, G5
var StartSoundFreqs = [...]float64{523.25, 659.25, 783.99}
