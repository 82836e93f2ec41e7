package physics

import (
	"container/heap"

	"siegefall/internal/core/ecs/components"
)

// astarNeighborOffsets are the four cardinal steps A* expands, applied in a
// fixed order so that open-set insertion order — and therefore the
// lexicographic tie-break's effect on the final path — is reproducible
// across identical GridMap states (spec §4.4 A* contract).
var astarNeighborOffsets = [4]components.GridCell{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

type astarNode struct {
	cell     components.GridCell
	g        int
	f        int
	index    int
}

type astarQueue []*astarNode

func (q astarQueue) Len() int { return len(q) }

func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].cell.Less(q[j].cell)
}

func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *astarQueue) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func manhattan(a, b components.GridCell) int {
	dx := int(a.X) - int(b.X)
	if dx < 0 {
		dx = -dx
	}
	dy := int(a.Y) - int(b.Y)
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// FindPath runs A* from start to goal over grid's walkable cells, expanding
// the four cardinal neighbors in a fixed order and breaking open-set ties
// lexicographically on (x, y) (spec §4.4). It returns the path excluding
// start and including goal, or (nil, false) if goal is unreachable.
func FindPath(grid *components.GridMap, start, goal components.GridCell) ([]components.GridCell, bool) {
	if !grid.IsWalkable(goal) {
		return nil, false
	}
	if start == goal {
		return nil, true
	}

	open := &astarQueue{}
	heap.Init(open)
	heap.Push(open, &astarNode{cell: start, g: 0, f: manhattan(start, goal)})

	cameFrom := make(map[components.GridCell]components.GridCell)
	bestG := map[components.GridCell]int{start: 0}
	closed := make(map[components.GridCell]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		if closed[current.cell] {
			continue
		}
		closed[current.cell] = true

		if current.cell == goal {
			return reconstructPath(cameFrom, goal), true
		}

		for _, off := range astarNeighborOffsets {
			next := components.GridCell{X: current.cell.X + off.X, Y: current.cell.Y + off.Y}
			if !grid.IsWalkable(next) || closed[next] {
				continue
			}
			tentativeG := current.g + 1
			if prev, ok := bestG[next]; ok && prev <= tentativeG {
				continue
			}
			bestG[next] = tentativeG
			cameFrom[next] = current.cell
			heap.Push(open, &astarNode{cell: next, g: tentativeG, f: tentativeG + manhattan(next, goal)})
		}
	}
	return nil, false
}

func reconstructPath(cameFrom map[components.GridCell]components.GridCell, goal components.GridCell) []components.GridCell {
	var reversed []components.GridCell
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		reversed = append(reversed, cur)
		cur = prev
	}
	path := make([]components.GridCell, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}
