// Package discovery finds installed application bundles on macOS.
//
// Bundles are located through the Spotlight metadata index with
// mdfind, using an exact match on kMDItemCFBundleIdentifier. Every installed
// version of a product shares the same bundle identifier, so a single
// query returns all of them, in no particular order.
//
// The package also reads bundle metadata (the short version string) from
// the XML Info.plist inside a bundle for display purposes.
package discovery
