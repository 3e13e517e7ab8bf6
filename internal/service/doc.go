// Package service contains the application use cases built on the quantity
// kinds: describing distances, walks, projections and areas for display.
//
// Services receive their collaborators (a logger and a display formatter)
// through constructor injection. Every method takes a context so that the
// run id attached by the caller ends up on each log line.
package service
