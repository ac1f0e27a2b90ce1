package cursor

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/smifb/smifb/cursor"
	"github.com/smifb/smifb/framebuffer"
	"github.com/smifb/smifb/hw/chip"
	"github.com/smifb/smifb/hw/dc"
)

var (
	flags = flag.NewFlagSet("cursor", flag.ExitOnError)

	chipName = flags.String("chip", "SM750", "target chip")
	preview  = flags.Bool("preview", false, "also write a PNG of the cursor as the hardware shows it")
	dither   = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion in the preview")
	colors   = flags.Int("colors", 16, "number of colors in the preview of 32bpp cursors")

	imagefile string
)

const usageString = `Image to hardware cursor converter.

Usage: %s [flags] <image>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "cursor")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	v, err := chip.ParseVariant(*chipName)
	if err != nil {
		log.Fatalln(err)
	}
	c, err := chip.Lookup(v)
	if err != nil {
		log.Fatalln(err)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	src, _, err := image.Decode(r)
	r.Close()
	if err != nil {
		log.Fatalln(err)
	}

	size := src.Bounds().Size()
	if err := cursor.Validate(size.X, size.Y); err != nil {
		log.Fatalln(err)
	}
	surface := framebuffer.NewSurface(image.Rectangle{Max: size}, framebuffer.ARGB8888)
	draw.Draw(surface, surface.Bounds(), src, src.Bounds().Min, draw.Src)

	data, err := cursor.Encode(c.CursorFormat, surface)
	if err != nil {
		log.Fatalln(err)
	}
	blob := &cursor.Blob{
		Format: c.CursorFormat,
		Width:  size.X,
		Height: size.Y,
		Data:   data,
	}

	base := strings.TrimSuffix(imagefile, filepath.Ext(imagefile))
	if err := writeFile(base+".smcr", blob.Store); err != nil {
		log.Fatalln(err)
	}

	if *preview {
		img := previewImage(blob, surface)
		err := writeFile(base+".preview.png", func(w io.Writer) error {
			return png.Encode(w, img)
		})
		if err != nil {
			log.Fatalln(err)
		}
	}
}

// previewImage returns a paletted image of what the cursor engine displays.
func previewImage(b *cursor.Blob, surface *framebuffer.Surface) image.Image {
	if b.Format == chip.Legacy2bpp {
		keys := dc.DefaultColors
		return cursor.Decode(b.Data, [3]color.Color{keys.Background, keys.Foreground, keys.Border})
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make([]color.Color, 0, *colors), surface)
	dst := image.NewPaletted(surface.Bounds(), p)

	var d draw.Drawer = draw.Src
	if *dither {
		d = draw.FloydSteinberg
	}
	d.Draw(dst, dst.Bounds(), surface, image.Point{})
	return dst
}

func writeFile(name string, store func(io.Writer) error) error {
	w, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := store(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
