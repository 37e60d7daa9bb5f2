package buffer

// Position selects how Seek interprets its offset.
type Position int

const (
	// SeekAbsolute positions the read cursor at an offset from the start of
	// the stored bytes.
	SeekAbsolute Position = iota

	// SeekRelative adjusts the read cursor by a signed offset from its
	// current position.
	SeekRelative
)

// String returns a human-readable representation of the position mode.
func (p Position) String() string {
	switch p {
	case SeekAbsolute:
		return "Absolute"
	case SeekRelative:
		return "Relative"
	default:
		return "Unknown"
	}
}
