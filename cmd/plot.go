package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"temline/chart"
)

var (
	plotDir   string
	chartFile string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Write voltage.png and current.png profile plots",
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := evaluate(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(plotDir, 0o755); err != nil {
			return fmt.Errorf("无法创建目录: %w", err)
		}
		rec := chart.NewRecord(ev)
		for _, kind := range []chart.Kind{chart.KindVoltage, chart.KindCurrent} {
			name := filepath.Join(plotDir, string(kind)+".png")
			if err := writeFile(name, func(f *os.File) error { return rec.WritePNG(f, kind) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write an interactive HTML page with the voltage and current charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := evaluate(cmd)
		if err != nil {
			return err
		}
		c := &chart.Charts{Record: chart.NewRecord(ev)}
		if err := writeFile(chartFile, func(f *os.File) error { return c.Render(f) }); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), chartFile)
		return nil
	},
}

func writeFile(name string, render func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}

func init() {
	plotCmd.Flags().StringVarP(&plotDir, "out", "o", ".", "output directory")
	chartCmd.Flags().StringVarP(&chartFile, "out", "o", "temline.html", "output HTML file")
	rootCmd.AddCommand(plotCmd, chartCmd)
}
