package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/ui"
)

// printSaved lists the artifacts a command wrote, honoring --json.
func printSaved(paths []string) {
	if jsonOutput {
		data, err := json.MarshalIndent(map[string][]string{"outputs": paths}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}
	fmt.Println(ui.Heading("Saved:"))
	for _, p := range paths {
		fmt.Printf("- %s\n", ui.Path(p))
	}
}
