// Package datasearch compare search structures over a dataset of
// flower records, with a multi-value red-black tree at its core.
//
// rbt:
//
// Red-black tree where values comparing equal share a single node.
// Insert only, with invariant validation and tree statistics.
//
// search:
//
// Structures the tree is measured against, linear scan, unbalanced
// binary search tree, chained hash table and btree backed multimap.
//
// flower:
//
// Flower record, its CSV codec and a synthetic dataset generator.
//
// bench:
//
// Build and time every structure over a dataset, write matches and
// timings as report files.
//
// flock:
//
// File locking for linux, mac and windows, serializes writers of
// shared report files across processes.
//
// lib:
//
// Settings, histograms and other convenience functions used by other
// packages.
//
// log:
//
// Leveled logging shared by all packages.
//
// tools/rbbench:
//
// Command line to generate datasets, run benchmarks and dump trees.
package datasearch
