// Command wordgraph builds a word-adjacency graph from a text file and
// answers bridge-word, shortest-path, PageRank and random-walk queries on it.
//
//	wordgraph --file story.txt bridge seek life
//	wordgraph --file story.txt path to new
//	wordgraph --file story.txt --seed 7 walk --out random_walk.txt
package main

func main() {
	Execute()
}
