package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Long:  `Shows every registered shooter profile.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	profiles := registry.List()
	if len(profiles) == 0 {
		fmt.Println("No profiles available.")
		return nil
	}

	idW, titleW := len("ID"), len("Title")
	for _, p := range profiles {
		idW = max(idW, len(p.ID))
		titleW = max(titleW, len(p.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-----")
	for _, p := range profiles {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, p.ID, titleW, p.Title, p.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'skyshooter play <id>' to play a profile.")
	return nil
}
