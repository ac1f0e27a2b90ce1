package layout

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/vram"
)

var (
	flags = flag.NewFlagSet("layout", flag.ExitOnError)

	chipName = flags.String("chip", "", "only print the layout of this chip")
)

const usageString = `Print the device memory partition table.

Usage: %s [flags]

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "layout")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	variants := []chip.Variant{chip.SM750, chip.SM768}
	if *chipName != "" {
		v, err := chip.ParseVariant(*chipName)
		if err != nil {
			log.Fatalln(err)
		}
		variants = []chip.Variant{v}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CHIP\tCTRL\tPRIMARY\tCURSOR\tCURSOR FORMAT")
	for _, v := range variants {
		c, err := chip.Lookup(v)
		if err != nil {
			log.Fatalln(err)
		}
		for _, p := range vram.Layout(c) {
			fmt.Fprintf(w, "%v\t%d\t%v\t%v\t%v\n", c, p.Ctrl, p.Primary, p.Cursor, c.CursorFormat)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}
