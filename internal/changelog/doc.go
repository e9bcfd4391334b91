// Package changelog reads and rewrites Keep a Changelog style markdown.
//
// The package works on raw text: every operation splits the document into
// lines, edits the line sequence and joins it back with the original line
// terminator. It provides:
//   - AddEntry: insert an entry into a category of the [Unreleased] block
//   - Release: promote [Unreleased] to a dated version and reseed it
//   - NextVersion: patch bump of the newest numbered release
//   - ParseTitle / EntryFromPR: conventional commit classification
//   - ParseStructure, queries and formatting for read-only views
package changelog
