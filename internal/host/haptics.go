package host

import "os"

// Haptics is the feedback surface of the host environment. Feedback is
// purely cosmetic: implementations must never gate or fail program logic.
type Haptics interface {
	// Confirm fires on positive confirmations: registration, attack landed.
	Confirm()
	// Select fires on selection changes (sport picker, shop cursor).
	Select()
}

// NewHaptics returns the best available feedback for this environment.
func NewHaptics(enabled bool) Haptics {
	if !enabled {
		return NoopHaptics{}
	}
	return terminalHaptics{}
}

// terminalHaptics rings the terminal bell on confirmations. Selection
// changes stay silent: a bell per keypress is noise, not feedback.
type terminalHaptics struct{}

func (terminalHaptics) Confirm() {
	// Stderr so the bell does not interleave with the renderer's stdout.
	_, _ = os.Stderr.WriteString("\a")
}

func (terminalHaptics) Select() {}

// NoopHaptics is the fallback for environments without feedback.
type NoopHaptics struct{}

func (NoopHaptics) Confirm() {}

func (NoopHaptics) Select() {}
