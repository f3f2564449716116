package cpu

// scanForward finds the OP_LOOP_END matching the OP_LOOP_START at ip,
// and returns the instruction pointer just past it.
func (cpu *Cpu) scanForward(ip int) (next int, ok bool) {
	code := cpu.Program.Instructions

	depth := 0
	for n := ip + 1; n < len(code); n++ {
		switch code[n] {
		case OP_LOOP_START:
			depth++
		case OP_LOOP_END:
			if depth == 0 {
				return n + 1, true
			}
			depth--
		}
	}

	return
}

// scanBackward finds the OP_LOOP_START matching the OP_LOOP_END at ip,
// and returns the instruction pointer just past it.
func (cpu *Cpu) scanBackward(ip int) (next int, ok bool) {
	code := cpu.Program.Instructions

	depth := 0
	for n := ip - 1; n >= 0; n-- {
		switch code[n] {
		case OP_LOOP_END:
			depth++
		case OP_LOOP_START:
			if depth == 0 {
				return n + 1, true
			}
			depth--
		}
	}

	return
}
