package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/pipeline"
	"github.com/matzehuels/viewalign/pkg/scene"
)

// outputFlags are shared by every command that produces a plan.
type outputFlags struct {
	apply   bool
	output  string
	noCache bool
	refresh bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.apply, "apply", false, "write the scene with the plan applied instead of the plan")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: plan to stdout, applied scene to <input>.aligned.json)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if a cached plan exists")
}

// appliedPath derives the default output of --apply from the input path.
func appliedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".aligned.json"
}

// emit writes the plan or the applied scene according to f.
func emit(s scene.Scene, input string, res *pipeline.Result, f outputFlags) error {
	if !f.apply {
		if f.output == "" {
			return scene.WritePlan(res.Plan, os.Stdout)
		}
		if err := writePlanFile(res.Plan, f.output); err != nil {
			return err
		}
		printSuccess("Wrote %s plan", res.Plan.Mode)
		printFile(f.output)
		printPlanStats(res)
		return nil
	}

	applied, err := scene.ApplyPlan(s, res.Plan)
	if err != nil {
		return fmt.Errorf("apply plan: %w", err)
	}
	path := f.output
	if path == "" {
		path = appliedPath(input)
	}
	if err := scene.WriteFile(applied, path); err != nil {
		return err
	}
	if res.Plan.Empty() {
		printInfo("Nothing to change")
	} else {
		printSuccess("Applied %s plan", res.Plan.Mode)
	}
	printFile(path)
	printPlanStats(res)
	for _, w := range res.Plan.Warnings {
		printWarning("%s", w.Message)
	}
	for _, sk := range res.Plan.Skipped {
		printWarning("%s skipped: %s", sk.ID, sk.Reason)
	}
	return nil
}

func writePlanFile(p scene.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return scene.WritePlan(p, f)
}
