package mdp

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Instance packages an MDP together with a deterministic policy for
// it, given as the index of the action selected in each state, so that
// both can be saved to and loaded from disk.
type Instance struct {
	MDP           MDP
	PolicyIndices []int
	Seed          uint64
}

// NewInstance generates a random MDP and policy with a Generator
// seeded with seed
func NewInstance(nStates, nActions, nOutcomes int, seed uint64) Instance {
	g := NewGenerator(seed)
	m := g.GenerateMDP(nStates, nActions, nOutcomes)

	return Instance{
		MDP:           m,
		PolicyIndices: g.SamplePolicyIndices(m),
		Seed:          seed,
	}
}

// Policy returns the deterministic policy of the Instance
func (i Instance) Policy() (Policy, error) {
	return i.MDP.Policy(i.PolicyIndices)
}

// Save gob-encodes the Instance to filename
func (i Instance) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %w", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(i); err != nil {
		return fmt.Errorf("save: could not encode instance: %w", err)
	}
	return nil
}

// Load loads an Instance previously saved with Instance.Save
func Load(filename string) (Instance, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Instance{}, fmt.Errorf("load: could not open data file: %w",
			err)
	}
	defer file.Close()

	var i Instance
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&i); err != nil {
		return Instance{}, fmt.Errorf("load: could not decode instance: %w",
			err)
	}
	return i, nil
}
