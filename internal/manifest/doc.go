// Package manifest reads and rewrites the package.json of an ngBoltJS
// project. A new project's manifest is derived from the cloned template's
// manifest plus the answers collected by "bolt new", and is checked against
// an embedded JSON Schema before it is written.
package manifest
