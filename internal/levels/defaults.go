package levels

const (
	// unlimitedPages disables the page guard.
	unlimitedPages = 0

	levelSeparator = ","
)
