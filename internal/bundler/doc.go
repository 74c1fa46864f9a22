// Package bundler turns a tree of route source files into the generated
// server entry point of a tuono project.
//
// The pipeline is linear and synchronous: a Collector walks src/routes and
// resolves each file into a Route (URL pattern plus handler module
// identifier), a Generator splices registration and import blocks into the
// static server entry template, and a Bootstrapper persists the result
// into the hidden .tuono directory together with the two static entry
// shims. Any fatal error aborts the whole run; callers retry by re-running
// the pipeline from the start.
package bundler
