// errors.go - error taxonomy for ChromaWave

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

import "fmt"

// Kind classifies a ChromaError as either a recoverable hardware fault
// or a programmer error that should fail loudly.
type Kind int

const (
	// DeviceClosed: operation attempted after Close.
	DeviceClosed Kind = iota
	// InitError: HAL init failed (e.g. SPI device not found).
	InitError
	// BusyTimeout: wait_busy exceeded its timeout.
	BusyTimeout
	// SPIError: byte transfer failed.
	SPIError
	// Cancelled: busy-wait observed the cancel flag.
	Cancelled
	// ModelNotFound: requested model name has no registry entry.
	ModelNotFound
	// FormatMismatch: framebuffer format doesn't match display.
	FormatMismatch
	// InvalidDimension: width or height outside (0, 4096].
	InvalidDimension
	// DimensionMismatch: render(..., into: fb) given a wrong-size framebuffer.
	DimensionMismatch
	// UnknownPaletteEntry: entry name or index not in the target format's palette.
	UnknownPaletteEntry
	// BadBytecode: interpreter hit malformed bytecode (a truncated operand or data run, or an unknown opcode).
	BadBytecode
	// UnsupportedFormat: operation requires a specific format (e.g. render_dual needs color4).
	UnsupportedFormat
)

func (k Kind) String() string {
	switch k {
	case DeviceClosed:
		return "device closed"
	case InitError:
		return "init error"
	case BusyTimeout:
		return "busy timeout"
	case SPIError:
		return "spi error"
	case Cancelled:
		return "cancelled"
	case ModelNotFound:
		return "model not found"
	case FormatMismatch:
		return "format mismatch"
	case InvalidDimension:
		return "invalid dimension"
	case DimensionMismatch:
		return "dimension mismatch"
	case UnknownPaletteEntry:
		return "unknown palette entry"
	case BadBytecode:
		return "bad bytecode"
	case UnsupportedFormat:
		return "unsupported format"
	default:
		return "unknown"
	}
}

// hardwareKinds are recoverable faults; everything else is a programmer error.
func (k Kind) isHardwareFault() bool {
	switch k {
	case DeviceClosed, InitError, BusyTimeout, SPIError, Cancelled:
		return true
	default:
		return false
	}
}

// ChromaError is the single error family for the whole module, carrying
// the model name (where known) for diagnosability per spec §7.
type ChromaError struct {
	Kind  Kind
	Model string // model name the error is bound to, if any

	Requested   string   // ModelNotFound: the name the caller asked for
	Suggestions []string // ModelNotFound: up to 3 closest dictionary matches

	Expected string // FormatMismatch
	Actual   string // FormatMismatch

	Opcode byte // BadBytecode

	Detail string // free-form context
	Err    error  // wrapped underlying error, if any
}

func (e *ChromaError) Error() string {
	prefix := e.Kind.String()
	if e.Model != "" {
		prefix = fmt.Sprintf("%s: %s", e.Model, prefix)
	}
	switch e.Kind {
	case ModelNotFound:
		if len(e.Suggestions) > 0 {
			return fmt.Sprintf("%s: %q not found, did you mean one of %v?", prefix, e.Requested, e.Suggestions)
		}
		return fmt.Sprintf("%s: %q not found", prefix, e.Requested)
	case FormatMismatch:
		return fmt.Sprintf("%s: expected %s, got %s", prefix, e.Expected, e.Actual)
	case BadBytecode:
		return fmt.Sprintf("%s: opcode 0x%02X", prefix, e.Opcode)
	}
	if e.Detail != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Detail, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", prefix, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return prefix
}

func (e *ChromaError) Unwrap() error { return e.Err }

// IsHardwareFault reports whether err is a ChromaError whose Kind is
// recoverable by the caller (retry, report, or sleep the device), as
// opposed to a programmer error that should fail loudly.
func IsHardwareFault(err error) bool {
	var ce *ChromaError
	if ok := asChromaError(err, &ce); ok {
		return ce.Kind.isHardwareFault()
	}
	return false
}

func asChromaError(err error, target **ChromaError) bool {
	for err != nil {
		if ce, ok := err.(*ChromaError); ok {
			*target = ce
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func errDeviceClosed(model string) error {
	return &ChromaError{Kind: DeviceClosed, Model: model}
}

func errModelNotFound(requested string, suggestions []string) error {
	return &ChromaError{Kind: ModelNotFound, Requested: requested, Suggestions: suggestions}
}

func errInvalidDimension(detail string) error {
	return &ChromaError{Kind: InvalidDimension, Detail: detail}
}

func errUnknownPaletteEntry(detail string) error {
	return &ChromaError{Kind: UnknownPaletteEntry, Detail: detail}
}

func errBadBytecode(opcode byte) error {
	return &ChromaError{Kind: BadBytecode, Opcode: opcode}
}
