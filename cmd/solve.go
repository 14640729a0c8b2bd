package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"temline"
)

var solveJSON bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print propagation constants and per-unit-length parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := evaluate(cmd)
		if err != nil {
			return err
		}
		if solveJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ev)
		}
		return writeSummary(cmd.OutOrStdout(), ev)
	},
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(solveCmd)
}

// writeSummary 输出结果摘要
func writeSummary(w io.Writer, ev *temline.Evaluation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name, value string
	}{
		{"Conductor", fmt.Sprintf("%s (σ = %.2e S/m, μr = %g)", ev.Conductor.Name, ev.Conductor.Conductivity, ev.Conductor.Permeability)},
		{"Dielectric", fmt.Sprintf("%s (εr = %.3f, tanδ = %.2e)", ev.Dielectric.Name, ev.Dielectric.Permittivity, ev.Dielectric.LossTangent)},
		{"Frequency", fmt.Sprintf("%.4e Hz", ev.Frequency)},
		{"Attenuation α", fmt.Sprintf("%.4e Np/m", ev.Alpha())},
		{"Phase β", fmt.Sprintf("%.4e rad/m", ev.Beta())},
		{"|Z0|", fmt.Sprintf("%.2f Ω", ev.Z0Magnitude())},
		{"Z0", fmt.Sprintf("%.4f %+.4fj Ω", real(ev.Z0), imag(ev.Z0))},
		{"Wavelength", fmt.Sprintf("%.4e m", ev.Wavelength())},
		{"Phase velocity", fmt.Sprintf("%.4e m/s", ev.PhaseVelocity())},
		{"R", fmt.Sprintf("%.4e Ω/m", ev.R)},
		{"L", fmt.Sprintf("%.4e H/m", ev.L)},
		{"C", fmt.Sprintf("%.4e F/m", ev.C)},
		{"G", fmt.Sprintf("%.4e S/m", ev.G)},
		{"|V(L)|", fmt.Sprintf("%.4e V", ev.VEnvelope[len(ev.VEnvelope)-1])},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value)
	}
	return tw.Flush()
}
