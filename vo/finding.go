package vo

// Finding is one reported outcome of a rule check. A demand blocks
// validity, an advice does not.
type Finding struct {
	Demand  bool
	Message string
}

func (f Finding) IsDemand() bool {
	return f.Demand
}

func (f Finding) String() string {
	if f.Demand {
		return "demand: " + f.Message
	}
	return "advice: " + f.Message
}
