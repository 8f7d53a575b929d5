//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs a headless simulation and plots the strand height. Set SCENE to a
// scene file to simulate it instead of the defaults.
func (Run) Simulate() error {
	mg.Deps(Build.Cli)

	args := []string{"simulate", "--ticks", "600", "--plot"}
	if scene := os.Getenv("SCENE"); scene != "" {
		args = append(args, "--config", scene)
	}
	fmt.Println("Run simulation...")
	if _, err := executeCmd("bin/"+binaryName, withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Exports the default zoetrope layout to zoetrope_frames.json.
func (Run) Export() error {
	mg.Deps(Build.Cli)

	fmt.Println("Export zoetrope frames...")
	if _, err := executeCmd("bin/"+binaryName, withArgs("zoetrope", "export"), withStream()); err != nil {
		return err
	}
	return nil
}
