// Package generator is the driver that turns one parsed message-file
// descriptor into generated Java source artifacts.
//
// A run translates the flat parameter string into a validated plan
// (pkg/options), selects the requested output variants, validates every
// variant before any sink is opened, then emits each variant's primary
// file plus siblings, optionally collecting code annotations
// (pkg/annotations) and writing path manifests. Execution is synchronous
// and single threaded; every error is fatal to the invocation and nothing
// is retried.
package generator
