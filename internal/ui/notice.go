package ui

// DefaultNoticeFrames is how long a notice stays up at 60 TPS.
const DefaultNoticeFrames = 180

// Notices keeps the latest user-facing message and counts down the frames it
// remains visible. A new message replaces the old one.
type Notices struct {
	text   string
	ttl    int
	frames int
}

// NewNotices returns an empty notice board showing each message for frames
// updates.
func NewNotices(frames int) *Notices {
	if frames <= 0 {
		frames = DefaultNoticeFrames
	}
	return &Notices{frames: frames}
}

// Notify implements core.Notifier.
func (n *Notices) Notify(msg string) {
	n.text = msg
	n.ttl = n.frames
}

// Advance counts down one frame.
func (n *Notices) Advance() {
	if n.ttl > 0 {
		n.ttl--
	}
}

// Current returns the visible message and its opacity. The last quarter of
// the lifetime fades out.
func (n *Notices) Current() (string, float64, bool) {
	if n.ttl <= 0 || n.text == "" {
		return "", 0, false
	}
	fade := n.frames / 4
	if fade > 0 && n.ttl < fade {
		return n.text, float64(n.ttl) / float64(fade), true
	}
	return n.text, 1, true
}
