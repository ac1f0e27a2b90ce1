package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/smifb/smifb/tools/cursor"
	"github.com/smifb/smifb/tools/layout"
	"github.com/smifb/smifb/tools/upload"
)

const usageString = `smitool inspects and programs SiliconMotion SM750/SM768 display planes.

Usage:

	%s <command> [arguments]

The commands are:

	layout   print the device memory partition table
	cursor   convert images to hardware cursor blobs
	upload   load a cursor blob into a running device
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "layout":
		layout.Main(flag.Args())
	case "cursor":
		cursor.Main(flag.Args())
	case "upload":
		upload.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
