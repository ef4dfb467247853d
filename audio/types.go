package audio

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundEat SoundType = iota
	SoundCrash
	SoundPause
	SoundStart
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	case SoundPause:
		return "pause"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}
