// Package netio reads and writes logic networks as YAML documents.
//
// The document shape is a flat node list; input order is significant
// because bit i of an on-set pattern refers to inputs[i]:
//
//	nodes:
//	  - name: GATA1
//	    inputs: [GATA2, PU1]
//	    on: ["10"]
//	  - name: PU1
//	    inputs: [GATA1]
//	    on: ["0"]
//
// Decode/Encode work on streams, Load/Save on files. All semantic
// validation is delegated to boolnet.NewLogicNetwork, so a loaded
// document satisfies the same invariants as a hand-built network.
package netio
