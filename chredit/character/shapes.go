package character

import "fmt"

// Shape selects the figure plotted between two points by Plot.
type Shape int

const (
	Line Shape = iota
	RectangleFrame
	RectangleFill
	EllipseFrame
	EllipseFill
)

func (s Shape) String() string {
	switch s {
	case Line:
		return "line"
	case RectangleFrame:
		return "rectangle frame"
	case RectangleFill:
		return "rectangle fill"
	case EllipseFrame:
		return "ellipse frame"
	case EllipseFill:
		return "ellipse fill"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Points returns the render space points covered by the shape spanning from
// a to b. Points may fall outside render space; Plot clips them.
func (s Shape) Points(a, b Point) []Point {
	switch s {
	case Line:
		return linePoints(a, b)
	case RectangleFrame:
		return rectanglePoints(a, b, false)
	case RectangleFill:
		return rectanglePoints(a, b, true)
	case EllipseFrame:
		return ellipsePoints(a, b, false)
	case EllipseFill:
		return ellipsePoints(a, b, true)
	default:
		return nil
	}
}

// Plot draws the shape spanning from a to b with value, clipped to render
// space. It returns the number of pixels written.
func (b *Buffer) Plot(shape Shape, from, to Point, value uint8) (int, error) {
	if value > MaxValue {
		return 0, fmt.Errorf("value %d: %w", value, ErrInvalidValue)
	}

	written := 0
	for _, pt := range shape.Points(from, to) {
		if !pt.Valid() {
			continue
		}
		if err := b.Set(pt.Pixel(), value); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// linePoints walks a Bresenham line from a to b, both ends included.
func linePoints(a, b Point) []Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy

	var points []Point
	x, y := a.X, a.Y
	for {
		points = append(points, Point{x, y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func rectanglePoints(a, b Point, fill bool) []Point {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)

	var points []Point
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if fill || x == x0 || x == x1 || y == y0 || y == y1 {
				points = append(points, Point{x, y})
			}
		}
	}
	return points
}

// ellipsePoints plots the ellipse inscribed in the rectangle spanned by a and
// b with an integer midpoint algorithm. Filled ellipses span each row between
// the outline's extremes.
func ellipsePoints(a, b Point, fill bool) []Point {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)

	seen := make(map[Point]bool)
	var outline []Point
	plot := func(x, y int) {
		pt := Point{x, y}
		if !seen[pt] {
			seen[pt] = true
			outline = append(outline, pt)
		}
	}

	w, h := x1-x0, y1-y0
	odd := h & 1
	dx := 4 * (1 - w) * h * h
	dy := 4 * (odd + 1) * w * w
	err := dx + dy + odd*w*w

	y0 += (h + 1) / 2
	y1 = y0 - odd
	stepX := 8 * w * w
	stepY := 8 * h * h

	for x0 <= x1 {
		plot(x1, y0)
		plot(x0, y0)
		plot(x0, y1)
		plot(x1, y1)

		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += stepX
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += stepY
			err += dx
		}
	}

	// flat ellipses stop early, finish the tips
	for y0-y1 < h {
		plot(x0-1, y0)
		plot(x1+1, y0)
		y0++
		plot(x0-1, y1)
		plot(x1+1, y1)
		y1--
	}

	if !fill {
		return outline
	}

	type span struct{ min, max int }
	rows := make(map[int]span)
	for _, pt := range outline {
		s, ok := rows[pt.Y]
		if !ok {
			rows[pt.Y] = span{pt.X, pt.X}
			continue
		}
		if pt.X < s.min {
			s.min = pt.X
		}
		if pt.X > s.max {
			s.max = pt.X
		}
		rows[pt.Y] = s
	}

	var points []Point
	for y, s := range rows {
		for x := s.min; x <= s.max; x++ {
			points = append(points, Point{x, y})
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
