// Package navmesh is an offline preprocessing toolkit for navigation
// meshes and occupancy grids.
//
// It has two independent sides, each its own subpackage:
//
//	grid/ — parses a .map occupancy grid, computes per-cell clearance
//	        (length of the traversable run ending at that cell, upward
//	        and leftward),
//	        a best-rectangle heuristic table, and a greedy maximal-
//	        rectangle decomposition that tiles the traversable area.
//	mesh/ — parses a planar polygon mesh (mesh v2), greedily merges
//	        adjacent convex polygons across shared edges whenever the
//	        result stays convex, and writes the reduced mesh back out.
//
// Both sides are pure, single-threaded, in-memory transforms: read a
// text grammar, compute, write a text grammar. Neither does pathfinding
// over its output; that is left to a downstream consumer.
//
// geom/ holds the 2D point and orientation primitives mesh's convexity
// gate uses, ring/ the arena-backed cyclic linked list mesh's vertex,
// neighbor and polygon rings are built from, and unionfind/ the
// disjoint-set structure mesh uses to track which polygon a merged-away
// id now resolves to.
//
//	go get github.com/katalvlaran/navmesh
package navmesh
