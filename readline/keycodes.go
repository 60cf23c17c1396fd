package readline

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// PrintKeyCodes zeigt die Rohbytes jeder Taste an, bis "quit" getippt wird.
// Hilfreich, um Escape-Sequenzen unbekannter Terminals zu untersuchen.
func (i *Instance) PrintKeyCodes() error {
	if i.state != stateIdle {
		return fmt.Errorf("%w: key codes during active edit", ErrInvalidState)
	}

	if err := i.Terminal.Write("Key codes debugging mode.\n" +
		"Press keys to see scan codes. Type 'quit' at any time to exit.\n"); err != nil {
		return err
	}

	if err := i.Terminal.EnableRawMode(); err != nil {
		return err
	}
	//nolint:errcheck
	defer i.Terminal.DisableRawMode()

	var last [4]byte
	for {
		c, err := i.Terminal.Read()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		copy(last[:], last[1:])
		last[len(last)-1] = c
		if string(last[:]) == "quit" {
			return nil
		}

		printable := byte('?')
		if strconv.IsPrint(rune(c)) && c < CharBackspace {
			printable = c
		}

		line := fmt.Sprintf("'%c' %02x (%d) (type quit to exit)\n\r", printable, c, c)
		if err := i.Terminal.Write(line); err != nil {
			return err
		}
	}
}
