// Package listingengine contains the gaadi listing management engine:
// the persistent vehicle catalog with its query pipeline, and the
// draft-composition session with its ordered image gallery.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package listingengine
