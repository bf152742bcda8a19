// Package skill inspects trees of skill units. A skill unit is a directory
// holding a marker file (SKILL.md by default) and is identified by its path
// relative to the root it was found under.
//
// The package scans roots for markers, detects skill units whose directory is
// itself a symbolic link, and checks that every skill imported into one root
// carries all the sibling entries of its counterpart in a source root.
// Everything here is read-only.
package skill
