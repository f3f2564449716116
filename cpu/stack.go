package cpu

// Stack of instruction pointers.
type Stack struct {
	Data []int
}

func (s *Stack) Push(ip int) {
	s.Data = append(s.Data, ip)
}

func (s *Stack) Pop() (ip int, ok bool) {
	ip, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (ip int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
