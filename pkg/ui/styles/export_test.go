package styles

// EmbeddedStyles exposes the embedded definitions to the external tests.
var EmbeddedStyles = embeddedStyles
