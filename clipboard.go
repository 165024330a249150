package autodoc

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	// Copy writes content to the system clipboard.
	Copy(content string) error
}
