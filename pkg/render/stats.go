package render

import "time"

// Stats tracks render throughput for HUDs and logs.
type Stats struct {
	Frames    int           // frames completed
	Pixels    int           // pixels traced across all frames
	LastFrame time.Duration // duration of the most recent frame
	Total     time.Duration // time spent tracing across all frames
}

func (s *Stats) record(pixels int, d time.Duration) {
	s.Frames++
	s.Pixels += pixels
	s.LastFrame = d
	s.Total += d
}

// AverageFrame returns the mean frame time, or 0 before the first frame.
func (s Stats) AverageFrame() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// Reset clears the statistics.
func (s *Stats) Reset() {
	*s = Stats{}
}
