package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"sixfive/cpu"
	"sixfive/mem"
)

// The host driver: build a CPU and a zeroed 64 kB memory, place a program
// image, and either free-run for a cycle budget or open the step debugger.

func run(c *cli.Context) error {
	image := c.String("image")
	if image == "" && c.String("file") != "" {
		b, err := os.ReadFile(c.String("file"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		image = string(b)
	}
	if image == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("no program image given", 86)
	}

	addr := uint16(c.Uint("addr"))

	ram := mem.NewRam()
	if err := ram.LoadHex(addr, image); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	proc := cpu.New()
	if c.IsSet("pc") {
		proc.PC = uint16(c.Uint("pc"))
	} else {
		proc.PC = addr
	}

	if c.Bool("debug") {
		return proc.Debug(ram, addr)
	}

	proc.Execute(uint32(c.Uint("cycles")), ram)

	fmt.Printf("PC: %04x  SP: %02x\n", proc.PC, proc.SP)
	fmt.Printf(" A: %02x   X: %02x   Y: %02x\n", proc.A, proc.X, proc.Y)
	fmt.Printf(" P: %08b (NV1BDIZC)\n", proc.Status.Byte())
	return nil
}

func main() {
	app := &cli.App{
		Name:  "sixfive",
		Usage: "run a program image on an emulated MOS 6502",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "program image as whitespace-separated hex bytes, e.g. \"A9 42 85 10\"",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the program image from a file instead",
			},
			&cli.UintFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "load address",
				Value:   0xfffc,
			},
			&cli.UintFlag{
				Name:  "pc",
				Usage: "initial program counter (defaults to the load address)",
			},
			&cli.UintFlag{
				Name:    "cycles",
				Aliases: []string{"n"},
				Usage:   "cycle budget",
				Value:   1000,
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "open the interactive step debugger instead of free-running",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
