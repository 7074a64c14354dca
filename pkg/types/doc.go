// Package types defines the core values passed between heyps components:
// the supported applications, version selectors, script kinds, and the
// resolved application a script is dispatched to.
package types
