package driver

// Schedule is a closed arithmetic progression of episode indices. Stop is
// inclusive: the loop runs while the index is less than or equal to it.
type Schedule struct {
	Start int
	Stop  int
	Step  int
}

// Count returns how many episodes the schedule yields.
func (s Schedule) Count() int {
	if s.Step <= 0 || s.Stop < s.Start {
		return 0
	}
	return (s.Stop-s.Start)/s.Step + 1
}
