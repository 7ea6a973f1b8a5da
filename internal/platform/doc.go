// Package platform wraps operating-system checks that differ between Unix and
// Windows, such as detecting an elevated (root) process.
package platform
