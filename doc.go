// Package gostructs collects classic data structures and graph
// algorithms for Go, each in its own focused package.
//
// The centerpiece is the graph suite:
//
//	graph/        — fixed-size directed multigraph storing a synchronized
//	                adjacency list and dense weight matrix
//	bfs/          — breadth-first traversal with hooks and depth limits
//	dfs/          — depth-first traversal, cycle detection, topological sort
//	paths/        — Dijkstra, Bellman–Ford, Floyd–Warshall shortest paths
//	mst/          — Prim and Kruskal minimum spanning forests
//	connectivity/ — weak components, bipartiteness, Kosaraju SCCs
//
// Algorithm packages layer on the graph container through free
// functions, so storage stays storage and every algorithm documents
// its own preconditions and error surface.
//
// Alongside the graph live the standalone containers:
//
//	dsu/        — disjoint set union with path halving
//	stack/      — generic slice-backed LIFO
//	queue/      — generic circular-buffer FIFO
//	arraylist/  — generic dynamic array with ordered helpers
//	linkedlist/ — generic singly linked list with merge sort
//	bintree/    — integer binary search tree and shape diagnostics
//	trie/       — lowercase-ASCII prefix tree
//
// Everything is in-memory and single-threaded by design: operations
// return values and sentinel errors, never log, and leave concurrency
// control to the caller.
//
//	go get github.com/nartvell/gostructs
package gostructs
