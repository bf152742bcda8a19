// Package cli defines the Cobra command tree for skillcheck. Each file
// registers one command with the root. Commands resolve settings, call into
// the skill, metadata, and inventory packages, and own all user-facing output
// and exit status.
package cli
