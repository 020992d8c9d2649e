// Package manifest loads, edits and saves installer source manifests.
//
// A manifest is an XML document in the WiX source style. The package wraps
// the etree DOM and exposes typed views (Directory, Component, File,
// Feature, Product) over the handful of elements wixsync reads or rewrites.
// Everything else in the document is preserved untouched.
//
// Namespaces are handled here and nowhere else: elements are matched by
// local name within the namespace of the root element, and new elements are
// created in that same namespace, whether it is declared as a default
// namespace or through a prefix.
package manifest
