package viewer

import (
	"image"
	"image/color"
	"math"
)

// frame is a software render target: an RGBA image plus a z-buffer in
// camera-space depth.
type frame struct {
	img     *image.RGBA
	zbuffer []float64
	width   int
	height  int
}

func newFrame(width, height int) *frame {
	return &frame{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuffer: make([]float64, width*height),
		width:   width,
		height:  height,
	}
}

func (f *frame) clear(bg color.RGBA) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.img.SetRGBA(x, y, bg)
		}
	}
	for i := range f.zbuffer {
		f.zbuffer[i] = math.Inf(1)
	}
}

// fillTriangle rasterizes a depth-tested triangle with scanlines. Vertices
// are screen coordinates with camera-space depth.
func (f *frame) fillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	vertices := [][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices top to bottom
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 = vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 = vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 = vertices[2][0], vertices[2][1], vertices[2][2]

	for y := int(math.Max(0, y1)); y <= int(math.Min(float64(f.height-1), y3)); y++ {
		fy := float64(y)

		var xStart, xEnd, zStart, zEnd float64
		foundStart := false
		foundEnd := false

		edge := func(ax, ay, az, bx, by, bz float64) {
			if ay == by || fy < ay || fy > by {
				return
			}
			t := (fy - ay) / (by - ay)
			x := ax + t*(bx-ax)
			z := az + t*(bz-az)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}
		edge(x1, y1, z1, x2, y2, z2)
		edge(x2, y2, z2, x3, y3, z3)
		edge(x1, y1, z1, x3, y3, z3)

		if !foundStart || !foundEnd {
			continue
		}
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		x0 := int(math.Max(0, xStart))
		x9 := int(math.Min(float64(f.width-1), xEnd))
		for x := x0; x <= x9; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*f.width + x
			if z < f.zbuffer[idx] {
				f.zbuffer[idx] = z
				f.img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a Bresenham line, ignoring depth. Used for wireframe
// edges and selection outlines drawn over the shaded pass.
func (f *frame) drawLine(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if x1 >= 0 && x1 < f.width && y1 >= 0 && y1 < f.height {
			f.img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
