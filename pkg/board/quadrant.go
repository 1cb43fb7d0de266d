package board

// Quadrant - четверть холста, границы по середине ширины и высоты
type Quadrant uint8

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants - порядок выбора стартовых клеток
var Quadrants = []Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

var quadrantNames = map[Quadrant]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

func (q Quadrant) String() string {
	if v, ok := quadrantNames[q]; ok {
		return v
	}
	return "unknown"
}

// Contains проверяет, лежит ли точка в квадранте холста width x height.
// Интервалы полуоткрытые: [0, w/2) и [w/2, w).
func (q Quadrant) Contains(x, y, width, height float64) bool {
	midX, midY := width/2, height/2

	var minX, maxX, minY, maxY float64
	switch q {
	case TopLeft:
		minX, maxX, minY, maxY = 0, midX, 0, midY
	case TopRight:
		minX, maxX, minY, maxY = midX, width, 0, midY
	case BottomLeft:
		minX, maxX, minY, maxY = 0, midX, midY, height
	case BottomRight:
		minX, maxX, minY, maxY = midX, width, midY, height
	default:
		return false
	}
	return x >= minX && x < maxX && y >= minY && y < maxY
}
