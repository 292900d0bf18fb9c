package searcher

// Defaults for the minimax search

const DefaultDepth = 3

// Inf bounds the alpha-beta window; any evaluation lies strictly inside it.
const Inf = 1 << 30
