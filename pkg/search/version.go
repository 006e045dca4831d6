package search

// Version is the semantic version of the search driver package.
const Version = "0.1.0"
