// Package builder turns token streams into core.Graph word graphs using the
// same "functional options + constructor pipeline" shape as the rest of the
// library.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildGraph(bopts, cons...): fresh graph, constructors applied in order.
//     – Apply(g, bopts, cons...):   run constructors against an existing graph
//     (explicit merge; weights accumulate).
//   - Constructors:
//     – Tokens(words): one edge observation per consecutive pair; the last
//     word is always registered as a vertex.
//     – Text(raw):     tokenize with the configured tokenizer, then Tokens.
//   - Options:
//     – WithTokenizer(fn): replace tokenize.Tokenize.
//     – WithWeight(delta): per-observation increment (default 1).
//
// Guarantees:
//
//   - Every word of the token stream is a vertex after construction, including
//     the final word which has no outgoing edge.
//   - Edge weight equals the number of observations merged into that edge.
//   - Deterministic: the same tokens in the same order produce identical
//     vertex/successor orders.
//   - Runtime errors are sentinels wrapped with the constructor name; panics
//     are confined to invalid option constructors.
package builder
