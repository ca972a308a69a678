// Package wordgraph turns free-form text into a directed weighted word graph
// and answers structural queries over it.
//
// An edge A→B with weight w means that word B immediately follows word A w
// times in the source text. Everything else is a reader of that graph.
//
// Packages:
//
//	core/       thread-safe Graph of words and weighted successor edges
//	tokenize/   ASCII-letter tokenizer and word normalization
//	builder/    text → Graph construction pipeline (BuildGraph, Apply, FromText)
//	bridge/     bridge words w1→m→w2 and their user-facing messages
//	textgen/    sentence rewriting by random bridge insertion
//	dijkstra/   shortest paths between words, single-pair and all-targets
//	pagerank/   damped power iteration with sink redistribution
//	walk/       random walks that never reuse a directed edge
//	export/     DOT, edge triples and walk dumps
//	session/    goroutine-safe facade with caching, logging and metrics
//
// The wordgraph command (cmd/wordgraph) exposes the session on the command line.
//
// Quick start:
//
//	s := session.New(session.WithSeed(7))
//	_ = s.Load("to explore strange new worlds, to seek out new life")
//	fmt.Println(s.Bridges("explore", "new"))
//	// The bridge words from "explore" to "new" are: strange.
package wordgraph
