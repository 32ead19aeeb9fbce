package quiz

// AudioSurface is the playback device the session drives. The session keeps
// no playback state of its own; Play and Pause are pure delegation.
type AudioSurface interface {
	SetSource(path string)
	Play()
	Pause()
}

// DisplaySurface receives every user-visible change the session makes.
type DisplaySurface interface {
	SetRoundLabel(label string)
	SetFeedback(text string)
	SetAdvanceLabel(label string)
	ShowAdvance(visible bool)
	ShowReplay(visible bool)
	ResetSelection()
}

// AudioSource is an AudioSurface for clients that do their own playback (the
// browser's media element); it only remembers the current source path.
type AudioSource struct {
	Source string
}

func (a *AudioSource) SetSource(path string) { a.Source = path }
func (a *AudioSource) Play()                 {}
func (a *AudioSource) Pause()                {}

// DisplayState is a DisplaySurface that records the most recent value of each
// display region. The HTTP layer serializes it as the session view; tests use
// it to observe what the player would see.
type DisplayState struct {
	RoundLabel     string
	Feedback       string
	AdvanceLabel   string
	AdvanceVisible bool
	ReplayVisible  bool
	Selection      string
}

func (d *DisplayState) SetRoundLabel(label string)   { d.RoundLabel = label }
func (d *DisplayState) SetFeedback(text string)      { d.Feedback = text }
func (d *DisplayState) SetAdvanceLabel(label string) { d.AdvanceLabel = label }
func (d *DisplayState) ShowAdvance(visible bool)     { d.AdvanceVisible = visible }
func (d *DisplayState) ShowReplay(visible bool)      { d.ReplayVisible = visible }
func (d *DisplayState) ResetSelection()              { d.Selection = SentinelOption }
