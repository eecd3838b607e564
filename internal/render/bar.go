package render

// DefaultBarWidth is the number of segments in a progress bar.
const DefaultBarWidth = 20

// Bar is the geometry of a progress bar.
type Bar struct {
	Filled  int
	Empty   int
	Percent int
}

// ProgressBar computes the bar for completed of total tasks across width
// segments. Filled segments round half up; the percentage truncates toward
// zero. An empty project yields an empty bar at 0%.
func ProgressBar(completed, total, width int) Bar {
	if width < 1 {
		width = DefaultBarWidth
	}
	if total <= 0 || completed <= 0 {
		return Bar{Empty: width}
	}
	if completed > total {
		completed = total
	}

	filled := (2*completed*width + total) / (2 * total)
	return Bar{
		Filled:  filled,
		Empty:   width - filled,
		Percent: completed * 100 / total,
	}
}
