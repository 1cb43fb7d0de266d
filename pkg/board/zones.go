package board

// Color - метка цветовой зоны, к которой может относиться клетка
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Grey   Color = "grey"
	Orange Color = "orange"
	Purple Color = "purple"
)

// Palette - фиксированная палитра из 5 зон
var Palette = []Color{Red, Blue, Grey, Orange, Purple}

var colorHex = map[Color]string{
	Red:    "#e74c3c",
	Blue:   "#3498db",
	Grey:   "#95a5a6",
	Orange: "#e67e22",
	Purple: "#9b59b6",
}

// Hex возвращает цвет зоны для отрисовки. Неизвестные цвета - темно-серые.
func (c Color) Hex() string {
	if v, ok := colorHex[c]; ok {
		return v
	}
	return "#333333"
}

// IsValid проверяет, что цвет входит в палитру
func (c Color) IsValid() bool {
	_, ok := colorHex[c]
	return ok
}

func (c Color) String() string {
	return string(c)
}

// ZoneCenter - точка притяжения зоны на холсте
type ZoneCenter struct {
	Color Color
	X, Y  float64
}

// DefaultZoneCenters - центры зон для холста 900x500:
// четыре угла и центр.
func DefaultZoneCenters() []ZoneCenter {
	return []ZoneCenter{
		{Color: Red, X: 180, Y: 120},
		{Color: Blue, X: 180, Y: 380},
		{Color: Grey, X: 450, Y: 250},
		{Color: Orange, X: 720, Y: 120},
		{Color: Purple, X: 720, Y: 380},
	}
}
