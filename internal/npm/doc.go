// Package npm invokes the npm package manager to install or update the
// dependencies of an ngBoltJS project directory.
package npm
