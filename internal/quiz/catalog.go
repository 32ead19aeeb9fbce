package quiz

// SentinelOption is the dropdown value meaning "nothing chosen yet". The
// selector is reset to it after every successful round advance.
const SentinelOption = "default"

// Category groups the audio samples of one dance style. The key doubles as
// the answer value submitted by the player and is matched as a substring
// inside sample file names.
type Category struct {
	Key     string
	Label   string
	Samples []string
}

// Option is a single entry of the answer dropdown.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog is the fixed sample bank of the quiz. Categories keep their build
// order; one round is drawn from each of them.
type Catalog struct {
	Categories []Category
	Options    []Option
}

// DefaultCatalog returns the built-in bank of Schubert dance excerpts.
//
// The dropdown offers six labels but there are only five categories: the
// minuet samples include their trios, so "Minuet" and "Trio" both resolve
// against files of the menuett category (whose names carry both substrings).
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Key:   "walzer",
				Label: "Waltz",
				Samples: []string{
					"D978walzer01.mp3",
					"D978walzer02.mp3",
					"D969walzer05.mp3",
					"D779walzer13.mp3",
				},
			},
			{
				Key:   "menuett",
				Label: "Minuet",
				Samples: []string{
					"D041menuett03trio.mp3",
					"D334menuett01.mp3",
					"D600menuett01trio.mp3",
				},
			},
			{
				Key:   "laendler",
				Label: "Ländler",
				Samples: []string{
					"D734laendler03.mp3",
					"D366laendler05.mp3",
					"D814laendler02.mp3",
					"D790laendler07.mp3",
				},
			},
			{
				Key:   "deutscher",
				Label: "German Dance",
				Samples: []string{
					"D783deutscher04.mp3",
					"D820deutscher01.mp3",
					"D972deutscher03.mp3",
				},
			},
			{
				Key:   "ecossaise",
				Label: "Écossaise",
				Samples: []string{
					"D977ecossaise02.mp3",
					"D299ecossaise05.mp3",
					"D781ecossaise08.mp3",
					"D145ecossaise01.mp3",
				},
			},
		},
		Options: []Option{
			{Value: SentinelOption, Label: "Choose a dance style"},
			{Value: "walzer", Label: "Waltz"},
			{Value: "menuett", Label: "Minuet"},
			{Value: "trio", Label: "Trio"},
			{Value: "laendler", Label: "Ländler"},
			{Value: "deutscher", Label: "German Dance"},
			{Value: "ecossaise", Label: "Écossaise"},
		},
	}
}

// Rounds returns how many rounds one run through the catalog takes.
func (c *Catalog) Rounds() int {
	return len(c.Categories)
}
