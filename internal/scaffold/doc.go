// Package scaffold creates new ngBoltJS projects. It powers the "bolt new"
// command: it checks the environment, collects project details, clones the
// project template, rewrites the template's package.json for the new project
// and installs its npm dependencies.
//
// Each step is a stage of Pipeline. Git, npm and the interactive prompt are
// reached through small interfaces so the pipeline can be driven by fakes in
// tests.
package scaffold
