package nonogram

// Block is the state of a single grid cell
type Block uint8

const (
	Empty Block = iota
	Filled
	Crossed
	Marked
)

func (b Block) String() string {
	switch b {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Crossed:
		return "crossed"
	case Marked:
		return "marked"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button that triggered a toggle
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
	ButtonOther // any further button, paints like ButtonPrimary
)

// Proposed returns the block a button paints. Unrecognized buttons paint Filled.
func Proposed(button Button) Block {
	switch button {
	case ButtonSecondary:
		return Crossed
	case ButtonTertiary:
		return Marked
	default:
		return Filled
	}
}

// Next returns the state after clicking a block with the given button.
// Clicking with the button that produced the current state clears it,
// any other button overwrites it.
func (b Block) Next(button Button) Block {
	proposed := Proposed(button)
	if b == proposed {
		return Empty
	}
	return proposed
}
