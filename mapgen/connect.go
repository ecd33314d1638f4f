// SPDX-License-Identifier: MIT
// Package: mapgen
//
// Purpose:
//   - Greedy and forced room connection, one passage per link.
//
// Contract:
//   - Every surviving room is accessible from room 0 on return.

package mapgen

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// candidatePair is the best tile pair found between two rooms.
type candidatePair struct {
	a, b     *Room
	tileA    grid.Coord
	tileB    grid.Coord
	distance int
	found    bool
}

// consider keeps the closest pair of candidate tiles across a and b.
// Ties keep the pair found first.
func (p *candidatePair) consider(a, b *Room) {
	for _, ta := range a.candidates() {
		for _, tb := range b.candidates() {
			d := ta.SqDist(tb)
			if !p.found || d < p.distance {
				*p = candidatePair{a: a, b: b, tileA: ta, tileB: tb, distance: d, found: true}
			}
		}
	}
}

// ConnectRooms links every room to the main room and carves the passages
// into g. rooms is sorted in place (largest first, stable) and re-numbered;
// the main room and accessibility flags are set on return. An empty room
// list is a no-op.
//
// Time: O(R²·E²) for R rooms with E edge tiles each. Memory: O(R).
func ConnectRooms(g *grid.Grid, rooms []*Room, passageRadius int) []Passage {
	if len(rooms) == 0 {
		return nil
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Size() > rooms[j].Size()
	})
	for i, r := range rooms {
		r.ID = i
		r.Connected = mapset.New[int]()
		r.IsMainRoom = i == 0
	}

	c := &connector{grid: g, rooms: rooms, radius: passageRadius, uf: newUnionFind(len(rooms))}
	c.refreshAccess()
	c.greedy()
	c.forceAccessibility()

	return c.passages
}

type connector struct {
	grid     *grid.Grid
	rooms    []*Room
	radius   int
	uf       *unionFind
	passages []Passage
}

// greedy links each still-isolated room to its nearest unlinked neighbour.
// A room linked earlier in the same pass is skipped as a source.
// Time: O(R²·E²). Memory: O(1).
func (c *connector) greedy() {
	for _, a := range c.rooms {
		if a.Connected.Size() > 0 {
			continue
		}
		var best candidatePair
		for _, b := range c.rooms {
			if a == b || a.IsConnected(b) {
				continue
			}
			best.consider(a, b)
		}
		if best.found {
			c.link(best)
		}
	}
}

// forceAccessibility repeatedly joins the globally closest pair between the
// inaccessible and accessible partitions until the former is empty.
// Time: O(R³·E²) worst case, one link per round. Memory: O(R).
func (c *connector) forceAccessibility() {
	for {
		var inaccessible, accessible []*Room
		for _, r := range c.rooms {
			if r.IsAccessibleFromMainRoom {
				accessible = append(accessible, r)
			} else {
				inaccessible = append(inaccessible, r)
			}
		}
		if len(inaccessible) == 0 {
			return
		}
		var best candidatePair
		for _, a := range inaccessible {
			for _, b := range accessible {
				if a.IsConnected(b) {
					continue
				}
				best.consider(a, b)
			}
		}
		if !best.found {
			return
		}
		c.link(best)
	}
}

// link records the connection, carves it and propagates accessibility.
func (c *connector) link(p candidatePair) {
	p.a.Connected.Put(p.b.ID)
	p.b.Connected.Put(p.a.ID)
	c.uf.union(p.a.ID, p.b.ID)
	c.refreshAccess()

	CarvePassage(c.grid, p.tileA, p.tileB, c.radius)
	c.passages = append(c.passages, Passage{RoomA: p.a.ID, RoomB: p.b.ID, From: p.tileA, To: p.tileB})
}

func (c *connector) refreshAccess() {
	for _, r := range c.rooms {
		r.IsAccessibleFromMainRoom = c.uf.accessible(r.ID)
	}
}
