// Package stdaggen generates random stDAGs for tests and benchmarks
// (a supplemented feature, out of spec.md's scope but present in
// original_source/utils.py:ER_st_DAG).
package stdaggen
