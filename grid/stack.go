package grid

import "fmt"

// NewStack wraps frames as a sequence addressed 1..len(frames).
// Returns ErrEmptyGrid for no frames or a nil frame, ErrSizeMismatch if
// extents differ.
func NewStack(frames ...*Grid) (*Stack, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyGrid
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("%w: frame %d is nil", ErrEmptyGrid, i+1)
		}
		if f.Width != frames[0].Width || f.Height != frames[0].Height {
			return nil, fmt.Errorf("%w: frame %d is %dx%d, frame 1 is %dx%d",
				ErrSizeMismatch, i+1, f.Width, f.Height, frames[0].Width, frames[0].Height)
		}
	}
	s := &Stack{frames: make([]*Grid, len(frames))}
	copy(s.frames, frames)

	return s, nil
}

// Len returns the number of frames N.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frame returns frame t, 1 <= t <= N. The frame is shared, not copied.
func (s *Stack) Frame(t int) (*Grid, error) {
	if t < 1 || t > len(s.frames) {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrFrameIndex, t, len(s.frames))
	}
	return s.frames[t-1], nil
}
