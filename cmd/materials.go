package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"temline/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the conductor and dielectric catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CONDUCTOR\tσ (S/m)\tμr")
		for _, c := range material.Conductors() {
			fmt.Fprintf(tw, "%s\t%.2e\t%g\n", c.Name, c.Conductivity, c.Permeability)
		}
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "DIELECTRIC\ttanδ\tμr\tεr")
		for _, d := range material.Dielectrics() {
			fmt.Fprintf(tw, "%s\t%.2e\t%g\t%g\n", d.Name, d.LossTangent, d.Permeability, d.Permittivity)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
