package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilianohg/appart/internal/models"
)

// childCommand resolves the target project and, for commands taking a child
// id argument, matches it against the project's children.
func childCommand(cmd *cobra.Command, args []string, ids func(models.PropertyProject) []string, run func(e *env, projectID, childID string)) {
	e := mustSetup()
	defer e.Close()

	projectID, err := resolveProject(e, cmd)
	if err != nil {
		fail(err)
	}

	childID := ""
	if len(args) > 0 {
		p, err := e.store.Project(projectID)
		if err != nil {
			fail(err)
		}
		childID, err = matchID(args[0], ids(p))
		if err != nil {
			fail(err)
		}
	}
	run(e, projectID, childID)
}

func documentIDs(p models.PropertyProject) []string {
	ids := make([]string, len(p.Documents))
	for i, d := range p.Documents {
		ids[i] = d.ID
	}
	return ids
}

func contactIDs(p models.PropertyProject) []string {
	ids := make([]string, len(p.Contacts))
	for i, c := range p.Contacts {
		ids[i] = c.ID
	}
	return ids
}

func taskIDs(p models.PropertyProject) []string {
	ids := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		ids[i] = t.ID
	}
	return ids
}

// Documents

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage project documents",
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, documentIDs, func(e *env, projectID, _ string) {
			p, _ := e.store.Project(projectID)
			printDocuments(e, p.Documents)
		})
	},
}

var docAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document",
	Long:  "Add a document. Categories: " + strings.Join(models.DocumentCategories, ", "),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, documentIDs, func(e *env, projectID, _ string) {
			name, _ := cmd.Flags().GetString("name")
			category, _ := cmd.Flags().GetString("category")
			date, _ := cmd.Flags().GetString("date")
			d, err := e.store.AddDocument(projectID, models.NewDocument{
				Name:     name,
				Category: category,
				Date:     date,
				FileURL:  optString(cmd, "url"),
				Notes:    optString(cmd, "notes"),
			})
			if err != nil {
				fail(err)
			}
			fmt.Printf("Added document %s (%s)\n", d.Name, shortID(d.ID))
		})
	},
}

var docUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change document fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, documentIDs, func(e *env, projectID, docID string) {
			err := e.store.UpdateDocument(projectID, docID, models.DocumentPatch{
				Name:     optString(cmd, "name"),
				Category: optString(cmd, "category"),
				Date:     optString(cmd, "date"),
				FileURL:  optString(cmd, "url"),
				Notes:    optString(cmd, "notes"),
			})
			if err != nil {
				fail(err)
			}
			fmt.Println("Document updated.")
		})
	},
}

var docRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, documentIDs, func(e *env, projectID, docID string) {
			if err := e.store.DeleteDocument(projectID, docID); err != nil {
				fail(err)
			}
			fmt.Println("Document deleted.")
		})
	},
}

// Contacts

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage project contacts",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, contactIDs, func(e *env, projectID, _ string) {
			p, _ := e.store.Project(projectID)
			printContacts(p.Contacts)
		})
	},
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Long:  "Add a contact. Usual roles: " + strings.Join(models.ContactRoles, ", ") + ". Any other role is accepted.",
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, contactIDs, func(e *env, projectID, _ string) {
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")
			c, err := e.store.AddContact(projectID, models.NewContact{
				Name:  name,
				Role:  role,
				Phone: optString(cmd, "phone"),
				Email: optString(cmd, "email"),
				Notes: optString(cmd, "notes"),
			})
			if err != nil {
				fail(err)
			}
			fmt.Printf("Added contact %s (%s)\n", c.Name, shortID(c.ID))
		})
	},
}

var contactUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change contact fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, contactIDs, func(e *env, projectID, contactID string) {
			err := e.store.UpdateContact(projectID, contactID, models.ContactPatch{
				Name:  optString(cmd, "name"),
				Role:  optString(cmd, "role"),
				Phone: optString(cmd, "phone"),
				Email: optString(cmd, "email"),
				Notes: optString(cmd, "notes"),
			})
			if err != nil {
				fail(err)
			}
			fmt.Println("Contact updated.")
		})
	},
}

var contactRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, contactIDs, func(e *env, projectID, contactID string) {
			if err := e.store.DeleteContact(projectID, contactID); err != nil {
				fail(err)
			}
			fmt.Println("Contact deleted.")
		})
	},
}

// Tasks

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage project tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, taskIDs, func(e *env, projectID, _ string) {
			p, _ := e.store.Project(projectID)
			printTasks(e, p.Tasks)
		})
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task (defaults to the project's current stage)",
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, nil, taskIDs, func(e *env, projectID, _ string) {
			p, err := e.store.Project(projectID)
			if err != nil {
				fail(err)
			}
			stage := p.Stage
			if s, err := optStage(cmd, "stage"); err != nil {
				fail(err)
			} else if s != nil {
				stage = *s
			}

			title, _ := cmd.Flags().GetString("title")
			t, err := e.store.AddTask(projectID, models.NewTask{
				Title:       title,
				Description: optString(cmd, "description"),
				DueDate:     optString(cmd, "due"),
				Stage:       stage,
				Priority:    deref(optPriority(cmd, "priority")),
			})
			if err != nil {
				fail(err)
			}
			fmt.Printf("Added task %s (%s)\n", t.Title, shortID(t.ID))
		})
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change task fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, taskIDs, func(e *env, projectID, taskID string) {
			stage, err := optStage(cmd, "stage")
			if err != nil {
				fail(err)
			}
			err = e.store.UpdateTask(projectID, taskID, models.TaskPatch{
				Title:       optString(cmd, "title"),
				Description: optString(cmd, "description"),
				DueDate:     optString(cmd, "due"),
				Completed:   optBool(cmd, "completed"),
				Stage:       stage,
				Priority:    optPriority(cmd, "priority"),
			})
			if err != nil {
				fail(err)
			}
			fmt.Println("Task updated.")
		})
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, taskIDs, func(e *env, projectID, taskID string) {
			if err := e.store.CompleteTask(projectID, taskID); err != nil {
				fail(err)
			}
			fmt.Println("Task completed.")
		})
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		childCommand(cmd, args, taskIDs, func(e *env, projectID, taskID string) {
			if err := e.store.DeleteTask(projectID, taskID); err != nil {
				fail(err)
			}
			fmt.Println("Task deleted.")
		})
	},
}

func printDocuments(e *env, docs []models.Document) {
	if len(docs) == 0 {
		fmt.Println("  (none)")
	}
	for _, d := range docs {
		fmt.Printf("  %s  %-30s %-14s %s\n", shortID(d.ID), d.Name, d.Category, e.fmt.Date(d.Date))
		if d.FileURL != nil {
			fmt.Printf("            %s\n", *d.FileURL)
		}
	}
}

func printContacts(contacts []models.Contact) {
	if len(contacts) == 0 {
		fmt.Println("  (none)")
	}
	for _, c := range contacts {
		var reach []string
		if c.Phone != nil {
			reach = append(reach, *c.Phone)
		}
		if c.Email != nil {
			reach = append(reach, *c.Email)
		}
		fmt.Printf("  %s  %-24s %-18s %s\n", shortID(c.ID), c.Name, c.Role, strings.Join(reach, ", "))
	}
}

func printTasks(e *env, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("  (none)")
	}
	for _, t := range tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		due := ""
		if t.DueDate != nil {
			due = e.fmt.Date(*t.DueDate)
		}
		fmt.Printf("  %s  %s %-34s %-14s %-6s %s\n", shortID(t.ID), check, t.Title, t.Stage.Label(), t.Priority, due)
	}
}

func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Document name")
	cmd.Flags().StringP("category", "c", "", "Document category")
	cmd.Flags().String("date", "", "Document date (YYYY-MM-DD)")
	cmd.Flags().String("url", "", "File location or URL")
	cmd.Flags().String("notes", "", "Free notes")
}

func addContactFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Contact name")
	cmd.Flags().StringP("role", "r", "", "Contact role")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("notes", "", "Free notes")
}

func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Task title")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("stage", "", "Stage the task belongs to")
	cmd.Flags().String("priority", "", "low, medium or high")
}

func init() {
	addDocumentFlags(docAddCmd)
	addDocumentFlags(docUpdateCmd)
	_ = docAddCmd.MarkFlagRequired("name")
	_ = docAddCmd.MarkFlagRequired("category")
	docCmd.AddCommand(docListCmd, docAddCmd, docUpdateCmd, docRmCmd)

	addContactFlags(contactAddCmd)
	addContactFlags(contactUpdateCmd)
	_ = contactAddCmd.MarkFlagRequired("name")
	_ = contactAddCmd.MarkFlagRequired("role")
	contactCmd.AddCommand(contactListCmd, contactAddCmd, contactUpdateCmd, contactRmCmd)

	addTaskFlags(taskAddCmd)
	addTaskFlags(taskUpdateCmd)
	taskUpdateCmd.Flags().Bool("completed", false, "Set the completion flag")
	_ = taskAddCmd.MarkFlagRequired("title")
	taskCmd.AddCommand(taskListCmd, taskAddCmd, taskUpdateCmd, taskDoneCmd, taskRmCmd)
}
