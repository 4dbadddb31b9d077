package terminal

import (
	"io"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// DefaultHoldDuration is how long a key counts as pressed after its last
// keystroke. Terminals report no key releases, held keys repeat instead.
const DefaultHoldDuration = 150 * time.Millisecond

// Control bytes, Ctrl-C or a lone Escape end the run.
const (
	ctrlC  = 0x03
	escape = 0x1b
)

// keyMap maps the left hand side of a QWERTY keyboard to the hexadecimal
// keypad layout:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Keyboard tracks the keypad state from terminal input.
type Keyboard struct {
	mu      sync.Mutex
	pressed [chip8.KeyCount]time.Time

	hold   time.Duration
	now    func() time.Time
	onQuit func()
}

// NewKeyboard returns a new keyboard. onQuit is called when Ctrl-C or a lone
// Escape key press is read.
func NewKeyboard(onQuit func()) *Keyboard {
	return &Keyboard{
		hold:   DefaultHoldDuration,
		now:    time.Now,
		onQuit: onQuit,
	}
}

// Listen reads keystrokes from r until it returns an error or io.EOF.
// It is meant to run in its own goroutine.
func (k *Keyboard) Listen(r io.Reader) error {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		k.handleInput(buf[:n])
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Keys returns the keypad state, keys count as pressed during the hold
// duration after their last keystroke.
func (k *Keyboard) Keys() chip8.Keys {
	k.mu.Lock()
	defer k.mu.Unlock()

	var keys chip8.Keys
	now := k.now()
	for i, pressed := range k.pressed {
		keys[i] = !pressed.IsZero() && now.Sub(pressed) < k.hold
	}
	return keys
}

// handleInput processes the bytes of a single read. A lone Escape quits,
// an Escape followed by more bytes starts a cursor or function key sequence
// which is ignored.
func (k *Keyboard) handleInput(input []byte) {
	if len(input) == 1 && input[0] == escape {
		k.quit()
		return
	}

	for i := 0; i < len(input); i++ {
		if input[i] == escape {
			i += escapeSequenceLength(input[i:]) - 1
			continue
		}
		k.handle(input[i])
	}
}

// escapeSequenceLength returns the length of the escape sequence at the
// start of input, which begins with the Escape byte.
func escapeSequenceLength(input []byte) int {
	if len(input) < 2 {
		return len(input)
	}

	switch input[1] {
	case '[': // CSI: parameters end with a final byte in the range @ to ~
		for i := 2; i < len(input); i++ {
			if input[i] >= 0x40 && input[i] <= 0x7e {
				return i + 1
			}
		}
		return len(input)
	case 'O': // SS3: a single final byte
		return min(3, len(input))
	default:
		return 2
	}
}

func (k *Keyboard) quit() {
	if k.onQuit != nil {
		k.onQuit()
	}
}

func (k *Keyboard) handle(b byte) {
	if b == ctrlC {
		k.quit()
		return
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keyMap[b]
	if !ok {
		return
	}

	k.mu.Lock()
	k.pressed[key] = k.now()
	k.mu.Unlock()
}
