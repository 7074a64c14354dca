// Package testutil provides utilities for testing heyps components.
//
// Key components:
//   - MockRunner: testify mock of runner.Runner, for asserting that no
//     process was spawned
//   - FakeRunner: canned results per program name with a call log
//   - Isolate: points every heyps directory at a temporary tree
//   - CreateBundle: a fake application bundle with an Info.plist
//
// Tests never spawn host utilities; everything that would run mdfind,
// open or osascript goes through one of the runners above.
package testutil
