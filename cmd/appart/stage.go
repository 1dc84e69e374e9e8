package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilianohg/appart/internal/models"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Move a project through the purchase stages",
}

var stageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the purchase stages in order",
	Run: func(cmd *cobra.Command, args []string) {
		for i, s := range models.Stages {
			fmt.Printf("%d. %-12s %-16s %s\n", i+1, s.ID, s.Label, s.Description)
		}
	},
}

var stageSetCmd = &cobra.Command{
	Use:   "set <stage>",
	Short: "Jump to any stage",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stage, err := parseStage(args[0])
		if err != nil {
			fail(err)
		}
		moveStage(cmd, func(models.Stage) (models.Stage, bool) { return *stage, true })
	},
}

var stageNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance to the following stage",
	Run: func(cmd *cobra.Command, args []string) {
		moveStage(cmd, models.Stage.Next)
	},
}

var stagePrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go back to the previous stage",
	Run: func(cmd *cobra.Command, args []string) {
		moveStage(cmd, models.Stage.Previous)
	},
}

func moveStage(cmd *cobra.Command, pick func(models.Stage) (models.Stage, bool)) {
	e := mustSetup()
	defer e.Close()

	id, err := resolveProject(e, cmd)
	if err != nil {
		fail(err)
	}
	p, err := e.store.Project(id)
	if err != nil {
		fail(err)
	}

	stage, ok := pick(p.Stage)
	if !ok {
		fail(errors.New("no stage in that direction from " + p.Stage.Label()))
	}
	if err := e.store.UpdateStage(id, stage); err != nil {
		fail(err)
	}
	fmt.Printf("%s: %s (%d%%)\n", p.Name, stage.Label(), models.StageProgress(stage))
}

func init() {
	stageCmd.AddCommand(stageListCmd)
	stageCmd.AddCommand(stageSetCmd)
	stageCmd.AddCommand(stageNextCmd)
	stageCmd.AddCommand(stagePrevCmd)
}
