// Package build runs the framework's gulp build with a named profile. It
// backs the run, clean, build and deploy commands.
package build
