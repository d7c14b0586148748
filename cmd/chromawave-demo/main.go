// main.go - chromawave-demo: draws a test scene to one or more panels

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jtp184/chromawave"
	"github.com/jtp184/chromawave/internal/buildinfo"
)

func boilerPlate() {
	fmt.Println("\033[38;2;255;20;147mChromaWave demo\033[0m")
	fmt.Println("Waveshare e-paper driver framework")
	fmt.Println("Press 'q' during a run to cancel the in-flight refresh.")
	fmt.Println()
	buildinfo.PrintBanner("chromawave-demo")
	fmt.Println()
}

func main() {
	models := flag.String("models", "epd_2in13_v4", "comma-separated model names, one panel each")
	scene := flag.String("scene", "checker", "scene to draw: checker, bars, border")
	spiPort := flag.String("spi", "", "SPI port name (real HAL only; empty = default)")
	resetPin := flag.String("reset-pin", "GPIO17", "reset GPIO pin name (real HAL only)")
	dcPin := flag.String("dc-pin", "GPIO25", "data/command GPIO pin name (real HAL only)")
	csPin := flag.String("cs-pin", "GPIO8", "chip-select GPIO pin name (real HAL only)")
	busyPin := flag.String("busy-pin", "GPIO24", "busy GPIO pin name (real HAL only)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chromawave-demo [options]\n\nDraws a test scene to one or more e-paper panels.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	boilerPlate()

	names := strings.Split(*models, ",")
	cfg := chromawave.PeriphHALConfig{
		SPIPort:  *spiPort,
		ResetPin: *resetPin,
		DCPin:    *dcPin,
		CSPin:    *csPin,
		BusyPin:  *busyPin,
	}

	displays := make([]*chromawave.Display, 0, len(names))
	for _, name := range names {
		disp, err := chromawave.Open(strings.TrimSpace(name), chromawave.DisplayOptions{
			HAL: chromawave.NewDefaultHAL(cfg),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open %q: %v\n", name, err)
			os.Exit(1)
		}
		defer disp.Close()
		displays = append(displays, disp)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if restore, ok := watchCancelKey(ctx, displays); ok {
		defer restore()
	}

	g, _ := errgroup.WithContext(ctx)
	for _, disp := range displays {
		disp := disp
		g.Go(func() error {
			canvas := buildScene(disp.Model(), *scene)
			if err := disp.Show(canvas); err != nil {
				return fmt.Errorf("%s: %w", disp.Model().Name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildScene renders one of the built-in test patterns at the panel's
// native resolution.
func buildScene(model *chromawave.ModelConfig, scene string) *chromawave.Canvas {
	w, h := model.Width, model.Height
	canvas := chromawave.NewCanvasFilled(w, h, chromawave.White)

	switch scene {
	case "bars":
		bands := []chromawave.Color{chromawave.Black, chromawave.White, chromawave.Red, chromawave.Yellow}
		bandWidth := w / len(bands)
		if bandWidth == 0 {
			bandWidth = 1
		}
		for x := 0; x < w; x++ {
			col := bands[(x/bandWidth)%len(bands)]
			for y := 0; y < h; y++ {
				canvas.SetPixel(x, y, col)
			}
		}
	case "border":
		for x := 0; x < w; x++ {
			canvas.SetPixel(x, 0, chromawave.Black)
			canvas.SetPixel(x, h-1, chromawave.Black)
		}
		for y := 0; y < h; y++ {
			canvas.SetPixel(0, y, chromawave.Black)
			canvas.SetPixel(w-1, y, chromawave.Black)
		}
	default: // "checker"
		const cell = 16
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x/cell+y/cell)%2 == 0 {
					canvas.SetPixel(x, y, chromawave.Black)
				}
			}
		}
	}
	return canvas
}

// watchCancelKey puts the terminal into raw mode and spawns a goroutine
// that calls Cancel on every display as soon as 'q' or Ctrl-C (byte 3
// in raw mode) is read from stdin. ctx is checked after each read
// returns, so a key read once the run is done cancels nothing. ok
// is false (and the terminal untouched) when stdin isn't a terminal —
// e.g. under CI or when input is piped.
func watchCancelKey(ctx context.Context, displays []*chromawave.Display) (restore func(), ok bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, false
	}
	prevState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, false
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil || ctx.Err() != nil {
				return
			}
			if n > 0 && (buf[0] == 'q' || buf[0] == 3) {
				for _, disp := range displays {
					disp.Cancel()
				}
				return
			}
		}
	}()

	return func() { term.Restore(fd, prevState) }, true
}
