package flappy

// Scene is a read-only copy of everything a renderer needs for one frame.
// Mutating a Scene never affects the session it came from.
type Scene struct {
	Tick   int
	Score  int
	Ended  bool
	Birds  []Bird
	Pipes  []Pipe
	Ground Ground
}

// Scene returns a snapshot of the current entities.
func (s *Session) Scene() Scene {
	birds := make([]Bird, len(s.birds))
	for i, b := range s.birds {
		birds[i] = *b
	}
	pipes := make([]Pipe, len(s.pipes))
	copy(pipes, s.pipes)

	return Scene{
		Tick:   s.tick,
		Score:  s.score,
		Ended:  s.ended,
		Birds:  birds,
		Pipes:  pipes,
		Ground: *s.ground,
	}
}
