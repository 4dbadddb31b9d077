package chip8

// stack is the fixed capacity call stack of return addresses.
type stack struct {
	entries [StackLimit]uint16
	depth   int
}

func (s *stack) push(address uint16) error {
	if s.depth >= StackLimit {
		return ErrStackOverflow
	}
	s.entries[s.depth] = address
	s.depth++
	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.depth == 0 {
		return 0, ErrStackUnderflow
	}
	s.depth--
	return s.entries[s.depth], nil
}
