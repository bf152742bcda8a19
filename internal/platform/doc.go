// Package platform wraps the filesystem queries skillcheck relies on:
// whether a path is a directory, whether it is itself a symbolic link, and
// where a link ultimately resolves to.
package platform
