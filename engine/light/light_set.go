package light

// Set is an ordered group of lights whose visibility is switched together.
// The street lamps of the diorama form one Set.
type Set struct {
	lights []Light
}

// NewSet creates a Set from the given lights. Nil entries are dropped.
//
// Parameters:
//   - lights: the member lights
//
// Returns:
//   - *Set: the new set
func NewSet(lights ...Light) *Set {
	s := &Set{}
	for _, l := range lights {
		s.Add(l)
	}
	return s
}

// Add appends a light to the set.
func (s *Set) Add(l Light) {
	if l == nil {
		return
	}
	s.lights = append(s.lights, l)
}

// Lights returns the members in insertion order.
func (s *Set) Lights() []Light {
	return s.lights
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.lights)
}

// SetVisible enables or disables every member.
//
// Parameters:
//   - visible: the new state for all members
func (s *Set) SetVisible(visible bool) {
	for _, l := range s.lights {
		l.SetEnabled(visible)
	}
}

// AllVisible reports whether every member is enabled. An empty set reports false.
func (s *Set) AllVisible() bool {
	if len(s.lights) == 0 {
		return false
	}
	for _, l := range s.lights {
		if !l.Enabled() {
			return false
		}
	}
	return true
}

// NoneVisible reports whether every member is disabled. An empty set reports true.
func (s *Set) NoneVisible() bool {
	for _, l := range s.lights {
		if l.Enabled() {
			return false
		}
	}
	return true
}
