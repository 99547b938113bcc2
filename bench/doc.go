// Package bench wires the partbench pipeline together:
//
//	load (file or generator) → derive representations → time each strategy
//	→ optionally build the intersection matrix and write the report file.
//
// A Runner owns all of its state; nothing is stored at package level, so
// two Runners never share results.
package bench
