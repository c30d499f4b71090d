// Package core contains fan-out plumbing utilities: indexed channel helpers,
// worker configuration via context, and the locomotive that drives worker
// lines. It does not define container semantics; instead it provides the
// scaffolding for package flow to run independent checks with controlled
// concurrency while keeping outputs in input order.
package core
