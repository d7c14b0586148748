//go:build !headless

// hal_periph.go - real HAL backed by periph.io SPI/GPIO drivers

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

package chromawave

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/jtp184/chromawave/internal/buildinfo"
)

func init() {
	buildinfo.RegisterFeature("hal: periph.io SPI/GPIO")
}

// periphHAL drives the SPI bus and GPIO lines through periph.io. SPI
// port and pin names are resolved once at Init, following the same
// named-pin-by-string convention as the Waveshare HAT wiring used
// across the periph.io device driver family.
type periphHAL struct {
	spiPortName string
	pinNames    map[GPIOPin]string

	conn conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn
}

// PeriphHALConfig names the SPI port and GPIO pins a real HAL should
// bind to. The pin fields use periph.io's string pin names (e.g. "GPIO25"
// or an rpi.P1_22-style BCM alias resolved via gpioreg.ByName).
type PeriphHALConfig struct {
	SPIPort  string // e.g. "/dev/spidev0.0", or "" for the default port
	ResetPin string
	DCPin    string
	CSPin    string
	BusyPin  string
}

// NewPeriphHAL builds a HAL that has not yet acquired any hardware;
// call Init to open the SPI port and GPIO lines.
func NewPeriphHAL(cfg PeriphHALConfig) HAL {
	return &periphHAL{
		spiPortName: cfg.SPIPort,
		pinNames: map[GPIOPin]string{
			PinReset: cfg.ResetPin,
			PinDC:    cfg.DCPin,
			PinCS:    cfg.CSPin,
			PinBusy:  cfg.BusyPin,
		},
	}
}

func (h *periphHAL) Init() error {
	if _, err := host.Init(); err != nil {
		return err
	}

	p, err := spireg.Open(h.spiPortName)
	if err != nil {
		return fmt.Errorf("chromawave: spi open: %w", err)
	}
	h.conn, err = p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return fmt.Errorf("chromawave: spi connect: %w", err)
	}

	h.rst = gpioreg.ByName(h.pinNames[PinReset])
	h.dc = gpioreg.ByName(h.pinNames[PinDC])
	h.cs = gpioreg.ByName(h.pinNames[PinCS])
	busyPin := gpioreg.ByName(h.pinNames[PinBusy])
	if h.rst == nil || h.dc == nil || h.cs == nil || busyPin == nil {
		return fmt.Errorf("chromawave: one or more GPIO pins not found: rst=%q dc=%q cs=%q busy=%q",
			h.pinNames[PinReset], h.pinNames[PinDC], h.pinNames[PinCS], h.pinNames[PinBusy])
	}
	if err := busyPin.In(gpio.Float, gpio.NoEdge); err != nil {
		return fmt.Errorf("chromawave: busy pin in: %w", err)
	}
	h.busy = busyPin

	if err := h.cs.Out(gpio.High); err != nil {
		return err
	}
	return h.dc.Out(gpio.High)
}

func (h *periphHAL) Close() error {
	return nil // periph.io pin/port handles have no explicit release
}

func (h *periphHAL) SetPin(pin GPIOPin, high bool) error {
	level := gpio.Low
	if high {
		level = gpio.High
	}
	switch pin {
	case PinReset:
		return h.rst.Out(level)
	case PinDC:
		return h.dc.Out(level)
	case PinCS:
		return h.cs.Out(level)
	default:
		return fmt.Errorf("chromawave: pin %d is not an output", pin)
	}
}

func (h *periphHAL) ReadPin(pin GPIOPin) (bool, error) {
	if pin != PinBusy {
		return false, fmt.Errorf("chromawave: pin %d is not an input", pin)
	}
	return h.busy.Read() == gpio.High, nil
}

func (h *periphHAL) SPIWrite(data []byte) error {
	return h.conn.Tx(data, nil)
}

func (h *periphHAL) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NewDefaultHAL builds this build's HAL implementation: the real
// periph.io-backed HAL, bound to cfg's SPI port and GPIO pin names.
func NewDefaultHAL(cfg PeriphHALConfig) HAL {
	return NewPeriphHAL(cfg)
}
