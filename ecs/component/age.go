package component

// Age accumulates simulated seconds. When Max is set the entity is destroyed
// once Seconds exceeds it.
type Age struct {
	Seconds float64
	Max     *float64
}

var AgeComponent = NewComponent[Age]()

// Expired reports whether a bounded age has run past its limit.
func (a Age) Expired() bool {
	return a.Max != nil && a.Seconds > *a.Max
}
