package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilianohg/appart/internal/models"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage property projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project and make it current",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		pt, err := optPropertyType(cmd, "type")
		if err != nil {
			fail(err)
		}
		stage, err := optStage(cmd, "stage")
		if err != nil {
			fail(err)
		}
		name, _ := cmd.Flags().GetString("name")

		p, err := e.store.AddProject(models.NewProject{
			Name:         name,
			PropertyType: deref(pt),
			Address:      optString(cmd, "address"),
			Price:        optFloat(cmd, "price"),
			Size:         optFloat(cmd, "size"),
			Rooms:        optInt(cmd, "rooms"),
			Stage:        deref(stage),
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("Created project %s (%s)\n", p.Name, shortID(p.ID))
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		projects := e.store.Projects()
		if len(projects) == 0 {
			fmt.Println("No projects yet. Use 'appart project add'.")
			return
		}
		current := e.store.CurrentProjectID()
		for _, p := range projects {
			marker := " "
			if p.ID == current {
				marker = "*"
			}
			fmt.Printf("%s %s  %-30s %-12s %-16s %3d%%  %s\n",
				marker,
				shortID(p.ID),
				p.Name,
				p.PropertyType.Label(),
				p.Stage.Label(),
				models.StageProgress(p.Stage),
				e.fmt.Currency(p.Price),
			)
		}
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a project in detail",
	Run: func(cmd *cobra.Command, args []string) {
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

		fmt.Printf("%s (%s)\n", p.Name, p.ID)
		fmt.Printf("Type: %s\n", p.PropertyType.Label())
		if p.Address != nil {
			fmt.Printf("Address: %s\n", *p.Address)
		}
		fmt.Printf("Price: %s\n", e.fmt.Currency(p.Price))
		if p.Size != nil {
			fmt.Printf("Size: %.0f m²\n", *p.Size)
		}
		if p.Rooms != nil {
			fmt.Printf("Rooms: %d\n", *p.Rooms)
		}
		fmt.Printf("Stage: %s (%d%%)\n", p.Stage.Label(), models.StageProgress(p.Stage))
		fmt.Printf("Created: %s  Updated: %s\n", e.fmt.Time(p.CreatedAt), e.fmt.Time(p.UpdatedAt))

		fmt.Printf("\nDocuments (%d)\n", len(p.Documents))
		printDocuments(e, p.Documents)
		fmt.Printf("\nContacts (%d)\n", len(p.Contacts))
		printContacts(p.Contacts)
		fmt.Printf("\nTasks (%d/%d done)\n", p.CompletedTasks(), len(p.Tasks))
		printTasks(e, p.Tasks)
		fmt.Println("\nFinancing")
		printFinancing(e, p.Financing)
	},
}

var projectUseCmd = &cobra.Command{
	Use:   "use [id]",
	Short: "Select the current project (no id clears the selection)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		if len(args) == 0 {
			if err := e.store.SetCurrentProject(""); err != nil {
				fail(err)
			}
			fmt.Println("Current project cleared.")
			return
		}

		id, err := matchID(args[0], projectIDs(e.store))
		if err != nil {
			fail(err)
		}
		if err := e.store.SetCurrentProject(id); err != nil {
			fail(err)
		}
		p, _ := e.store.Project(id)
		fmt.Printf("Current project: %s\n", p.Name)
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change project fields",
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		id, err := resolveProject(e, cmd)
		if err != nil {
			fail(err)
		}
		pt, err := optPropertyType(cmd, "type")
		if err != nil {
			fail(err)
		}
		stage, err := optStage(cmd, "stage")
		if err != nil {
			fail(err)
		}

		err = e.store.UpdateProject(id, models.ProjectPatch{
			Name:         optString(cmd, "name"),
			PropertyType: pt,
			Address:      optString(cmd, "address"),
			Price:        optFloat(cmd, "price"),
			Size:         optFloat(cmd, "size"),
			Rooms:        optInt(cmd, "rooms"),
			Stage:        stage,
		})
		if err != nil {
			fail(err)
		}
		fmt.Println("Project updated.")
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project with all its documents, contacts and tasks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		e := mustSetup()
		defer e.Close()

		id, err := matchID(args[0], projectIDs(e.store))
		if err != nil {
			fail(err)
		}
		p, _ := e.store.Project(id)
		if err := e.store.DeleteProject(id); err != nil {
			fail(err)
		}
		fmt.Printf("Deleted project %s\n", p.Name)
	},
}

func addProjectFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Project name")
	cmd.Flags().StringP("type", "t", "", "Property type: apartment, house or land")
	cmd.Flags().String("address", "", "Property address")
	cmd.Flags().Float64("price", 0, "Asking or agreed price")
	cmd.Flags().Float64("size", 0, "Living area in m²")
	cmd.Flags().Int("rooms", 0, "Number of rooms")
	cmd.Flags().String("stage", "", "Purchase stage")
}

func init() {
	addProjectFieldFlags(projectAddCmd)
	addProjectFieldFlags(projectUpdateCmd)
	_ = projectAddCmd.MarkFlagRequired("name")
	_ = projectAddCmd.MarkFlagRequired("type")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUseCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
