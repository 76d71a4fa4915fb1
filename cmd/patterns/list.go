package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/patterns/catalog"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	RunE:  listDemos,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only list demos in this category (creational, behavioral, structural)")
}

func listDemos(cmd *cobra.Command, args []string) error {
	reg := catalog.Builtin()

	demos := reg.List()
	if listCategory != "" {
		c, err := catalog.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		demos = reg.ByCategory(c)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tSUMMARY")
	for _, d := range demos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.Category, d.Summary)
	}
	return w.Flush()
}
