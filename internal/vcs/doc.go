// Package vcs runs git for the scaffolding pipeline. It only knows how to
// check that git is installed and how to clone a template repository into a
// new directory; everything else about the project is handled elsewhere.
package vcs
