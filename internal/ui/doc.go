// Package ui implements the safeprint log viewer, a small Bubble Tea
// program that follows the rolling log file.
//
// # Behavior
//
// The viewer re-reads the tail of the file (logfile.Tail) on a fixed
// refresh interval and renders it in a viewport. While following, the
// viewport sticks to the bottom so new lines appear as they are
// written; any manual scroll pauses following until space or G resumes
// it. Error-report lines are rendered in the theme's danger color,
// indented traceback continuations in the muted color.
//
// Because the log file is plain text with no structure, the viewer is
// strictly read-only and tolerates the file not existing yet — it
// simply shows nothing until the first write.
//
// # Key bindings
//
//   - space: pause/resume following
//   - g / home: jump to top (pauses)
//   - G / end: jump to bottom (resumes)
//   - T: cycle theme
//   - q, esc, ctrl+c: quit
package ui
