package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"temline"
	"temline/load"
)

var (
	flagInput = temline.DefaultInput()
	deckFile  string
)

var rootCmd = &cobra.Command{
	Use:   "temline",
	Short: "TEM wave propagation on a lossy parallel-plate line",
	Long: `Computes the propagation constant, characteristic impedance and
per-unit-length R, L, C, G of a parallel-plate transmission line, and the
voltage and current profiles of a matched line driven with 1 V.

Inputs come from flags or from a deck file (--input) with one
"key value" pair per line:

  frequency  6e9
  separation 0.005
  width      0.1
  length     10
  conductor  Cobre
  dielectric Aire
  phase      0`,
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("temline: ")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&deckFile, "input", "", "deck file with line parameters")
	pf.Float64VarP(&flagInput.Frequency, "frequency", "f", flagInput.Frequency, "frequency (Hz)")
	pf.Float64VarP(&flagInput.Separation, "separation", "d", flagInput.Separation, "plate separation (m)")
	pf.Float64VarP(&flagInput.Width, "width", "w", flagInput.Width, "plate width (m)")
	pf.Float64VarP(&flagInput.Length, "length", "l", flagInput.Length, "line length (m)")
	pf.StringVar(&flagInput.Conductor, "conductor", flagInput.Conductor, "conductor material (see 'temline materials')")
	pf.StringVar(&flagInput.Dielectric, "dielectric", flagInput.Dielectric, "dielectric material (see 'temline materials')")
	pf.Float64VarP(&flagInput.Phase, "phase", "t", flagInput.Phase, "observation phase ωt (rad)")
}

// inputFromFlags 参数文件为初值，显式给出的命令行参数覆盖之
func inputFromFlags(cmd *cobra.Command) (temline.Input, error) {
	in := temline.DefaultInput()
	if deckFile != "" {
		deck, err := load.DeckFile(deckFile)
		if err != nil {
			return in, err
		}
		in = deck
	}
	flags := cmd.Flags()
	for name, apply := range map[string]func(){
		"frequency":  func() { in.Frequency = flagInput.Frequency },
		"separation": func() { in.Separation = flagInput.Separation },
		"width":      func() { in.Width = flagInput.Width },
		"length":     func() { in.Length = flagInput.Length },
		"conductor":  func() { in.Conductor = flagInput.Conductor },
		"dielectric": func() { in.Dielectric = flagInput.Dielectric },
		"phase":      func() { in.Phase = flagInput.Phase },
	} {
		if flags.Changed(name) {
			apply()
		}
	}
	for _, w := range in.CheckRange() {
		log.Println(w)
	}
	return in, nil
}

// evaluate 读取输入并计算
func evaluate(cmd *cobra.Command) (*temline.Evaluation, error) {
	in, err := inputFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return temline.Evaluate(in)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
