package upload

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/smifb/smifb/cursor"
	"github.com/smifb/smifb/debug"
	"github.com/smifb/smifb/drivers/display"
	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/mmio"
)

var (
	flags = flag.NewFlagSet("upload", flag.ExitOnError)

	device   = flags.String("device", "", "sysfs directory of the PCI device, e.g. /sys/bus/pci/devices/0000:01:00.0")
	chipName = flags.String("chip", "SM750", "chip of the device")
	ctrl     = flags.Int("ctrl", 0, "display controller")
	x        = flags.Int("x", 0, "cursor x position, may be negative")
	y        = flags.Int("y", 0, "cursor y position, may be negative")
	verbose  = flags.Bool("v", false, "log register programming")

	blobfile string
)

// The framebuffer aperture is BAR 0, the registers are BAR 1.
const (
	vramResource = "resource0"
	mmioResource = "resource1"
)

const usageString = `Upload a cursor blob to the hardware cursor of a display controller.

Usage: %s [flags] <blob>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "upload")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 && *device != "" {
		blobfile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}
	if *verbose {
		debug.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	v, err := chip.ParseVariant(*chipName)
	if err != nil {
		log.Fatalln(err)
	}

	r, err := os.Open(blobfile)
	if err != nil {
		log.Fatalln(err)
	}
	blob, err := cursor.Load(r)
	r.Close()
	if err != nil {
		log.Fatalf("%s: %v", blobfile, err)
	}

	vram := must(mmio.Map(filepath.Join(*device, vramResource), 0))
	defer vram.Close()
	regs := must(mmio.Map(filepath.Join(*device, mmioResource), 0))
	defer regs.Close()

	dev, err := display.NewDevice(v, vram.Memory, regs.Memory)
	if err != nil {
		log.Fatalln(err)
	}
	plane := display.NewCursorPlane(dev)
	if err := plane.UploadBlob(*ctrl, blob); err != nil {
		log.Fatalln(err)
	}
	if err := plane.SetPosition(*ctrl, *x, *y); err != nil {
		log.Fatalln(err)
	}
	debug.Logger().Info("cursor uploaded", "ctrl", *ctrl, "region", plane.Region())
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatalln(err)
	}
	return v
}
