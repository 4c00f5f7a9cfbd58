package inpaint

import (
	"container/heap"
)

// bandItem is a pixel queued on the narrow band.
type bandItem struct {
	dist float64
	y    int
	x    int
}

// narrowBand is a min-heap of bandItem ordered by distance, then row, then
// column, so that pop order is reproducible. Items are pushed once when a
// pixel enters the band and are never updated in place.
type narrowBand []bandItem

// Len returns the number of queued pixels.
func (b narrowBand) Len() int { return len(b) }

// Less orders by distance with a row/column tie-break.
func (b narrowBand) Less(i, j int) bool {
	if b[i].dist != b[j].dist {
		return b[i].dist < b[j].dist
	}
	if b[i].y != b[j].y {
		return b[i].y < b[j].y
	}
	return b[i].x < b[j].x
}

// Swap swaps two items.
func (b narrowBand) Swap(i, j int) { b[i], b[j] = b[j], b[i] }

// Push appends an item. Use heap.Push, not this method.
func (b *narrowBand) Push(x any) { *b = append(*b, x.(bandItem)) }

// Pop removes the last item. Use heap.Pop, not this method.
func (b *narrowBand) Pop() any {
	old := *b
	n := len(old)
	item := old[n-1]
	*b = old[:n-1]
	return item
}

func (b *narrowBand) push(item bandItem) {
	heap.Push(b, item)
}

func (b *narrowBand) pop() bandItem {
	return heap.Pop(b).(bandItem)
}

// clone copies the band so that it can be consumed independently.
func (b narrowBand) clone() narrowBand {
	return append(narrowBand(nil), b...)
}

// seedContour flags every known pixel 4-adjacent to a masked pixel as band
// at distance 0 and returns the resulting heap.
func (f *field) seedContour(m *Mask) narrowBand {
	var nb narrowBand
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(y, x) {
				continue
			}
			for _, d := range neighbors4 {
				ny, nx := y+d[0], x+d[1]
				if !f.inBounds(ny, nx) {
					continue
				}
				i := f.index(ny, nx)
				if f.flags[i] != known {
					continue
				}
				f.flags[i] = band
				f.dists[i] = 0.0
				nb = append(nb, bandItem{dist: 0.0, y: ny, x: nx})
			}
		}
	}
	heap.Init(&nb)
	return nb
}
