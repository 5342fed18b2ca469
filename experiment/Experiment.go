// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/mdpeval/experiment/tracker"
	ts "github.com/samuelfneumann/mdpeval/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// track environment TimeSteps by sending each to their Trackers, which
// cache the data they need in RAM to be later saved to disk. The
// Save() function then saves all cached data to disk. This is usually
// performed after an experiment has been run. The Run() method runs
// all episodes until the maximum timestep limit is reached, and the
// RunEpisode() method runs a single episode.
type Experiment interface {
	Run() error

	// RunEpisode runs a single episode and returns whether the
	// experiment has finished
	RunEpisode() (bool, error)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}
