// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/sm83/cpu"
	"github.com/ezrec/sm83/emulator"
	"github.com/ezrec/sm83/internal"
	"github.com/ezrec/sm83/translate"
)

var f = translate.From

// options shared by every subcommand.
type options struct {
	verbose bool
	defines []string
	lang    string
}

// assemble parses a listing with the emulator and command line defines.
func (opt *options) assemble(emu *emulator.Emulator, name string, input io.Reader) (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{Verbose: opt.verbose}

	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	for _, def := range opt.defines {
		key, value, ok := strings.Cut(def, "=")
		if !ok {
			value = "1"
		}
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
	}
	return
}

// run assembles and runs one listing, printing the final registers.
func (opt *options) run(out io.Writer, name string, input io.Reader) (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = opt.verbose

	emu.Program, err = opt.assemble(emu, name, input)
	if err != nil {
		return
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run()
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	fmt.Fprintln(out, f("%v: %v (%d instructions)", name, emu.Snapshot(), emu.Ticks()))
	return
}

// openListing opens a listing file, "-" is stdin.
func openListing(name string) (rc io.ReadCloser, err error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(name)
}

func main() {
	opt := &options{}

	rootCmd := &cobra.Command{
		Use:          "sm83",
		Short:        "SM83 ALU listing runner",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(opt.lang) != 0 {
				translate.SetLanguage(opt.lang)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opt.verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringArrayVarP(&opt.defines, "define", "D", nil, "Predefine an equate, NAME=VALUE")
	rootCmd.PersistentFlags().StringVar(&opt.lang, "lang", "", "Message language (BCP 47 tag)")

	runCmd := &cobra.Command{
		Use:   "run [listing...]",
		Short: "Assemble and run listings, checking every .expect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				inf, err := openListing(name)
				if err != nil {
					return err
				}
				err = opt.run(cmd.OutOrStdout(), name, inf)
				inf.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	var sets []string
	execCmd := &cobra.Command{
		Use:   "exec instruction [target]",
		Short: "Execute a single instruction against preset registers",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			for _, set := range sets {
				name, value, ok := strings.Cut(set, "=")
				if !ok {
					return fmt.Errorf("--set %v: %w", set, cpu.ErrOpcodeValueMissing)
				}
				lines = append(lines, ".set "+name+" "+value)
			}
			lines = append(lines, strings.Join(args, " "))
			return opt.run(cmd.OutOrStdout(), "exec", strings.NewReader(strings.Join(lines, "\n")))
		},
	}
	execCmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Preset a register, REG=VALUE (a, hl, f, flags)")

	listCmd := &cobra.Command{
		Use:   "list [listing]",
		Short: "Assemble a listing and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inf, err := openListing(args[0])
			if err != nil {
				return err
			}
			defer inf.Close()

			prog, err := opt.assemble(emulator.NewEmulator(), args[0], inf)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prog.Listing())
			return nil
		},
	}

	definesCmd := &cobra.Command{
		Use:   "defines",
		Short: "Print the predefined equates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := emulator.NewEmulator()
			defines := maps.Collect(emu.Defines())
			for _, key := range slices.Sorted(internal.IterSeq2Keys(emu.Defines())) {
				fmt.Fprintf(cmd.OutOrStdout(), ".equ %v %v\n", key, defines[key])
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, execCmd, listCmd, definesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
