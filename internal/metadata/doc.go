// Package metadata validates the JSON metadata files that accompany a skill
// migration wave (skills_index.json, data/catalog.json, data/aliases.json by
// default). Each file must exist and parse as JSON. When a sibling schema
// named <file>.schema.json exists, the file must also satisfy it.
package metadata
