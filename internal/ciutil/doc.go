// Package ciutil detects whether the process runs under a CI provider and
// describes that environment, so log output produced during CI runs can be
// correlated with the job that produced it.
package ciutil
