package driving

// HelpService opens the bundled help page.
type HelpService interface {
	// Open displays the help page in the default browser and returns the
	// path that was opened.
	Open() (string, error)

	// Path returns the help page location without opening it, writing
	// the embedded copy to disk if necessary.
	Path() (string, error)
}
