package formats

import (
	"strconv"
	"strings"

	"github.com/pathprop/pathprop/pkg/math"
)

// PathLog is a parsed console path recording.
type PathLog struct {
	// Points in recording order, translated so the first point is the
	// origin.
	Points []math.Vec3
	// Skipped counts statements that were not empty but did not parse
	// as a position.
	Skipped int
}

// ParsePathLog extracts `setpos x y z` statements from console output.
// Statements are separated by newlines or semicolons; `setang`
// statements and blank lines are ignored, anything else malformed is
// skipped and counted. Parsing is best effort and never fails.
func ParsePathLog(data []byte) *PathLog {
	log := &PathLog{}
	for _, line := range strings.Split(string(data), "\n") {
		for _, stmt := range strings.Split(line, ";") {
			fields := strings.Fields(stmt)
			if len(fields) == 0 {
				continue
			}
			switch fields[0] {
			case "setpos":
				p, ok := parsePos(fields)
				if !ok {
					log.Skipped++
					continue
				}
				log.Points = append(log.Points, p)
			case "setang":
				// View angles accompany positions in recordings but do
				// not affect the path.
			default:
				log.Skipped++
			}
		}
	}

	if len(log.Points) > 0 {
		first := log.Points[0]
		for i := range log.Points {
			log.Points[i] = log.Points[i].Sub(first)
		}
	}
	return log
}

func parsePos(fields []string) (math.Vec3, bool) {
	if len(fields) < 4 {
		return math.Vec3{}, false
	}
	var c [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return math.Vec3{}, false
		}
		c[i] = v
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, true
}
