// Package model defines the data structures for stdin mutation fuzzing.
package model

// Category represents the family of characters a candidate pool draws from.
type Category string

const (
	// CategoryAlphabetic draws from upper and lower case ASCII letters.
	CategoryAlphabetic Category = "alphabetic"
	// CategoryNumeric draws from the digits 0-9.
	CategoryNumeric Category = "numeric"
	// CategorySymbol draws from a fixed punctuation set.
	CategorySymbol Category = "symbol"
	// CategoryMixed draws from letters, digits and symbols together.
	CategoryMixed Category = "mixed"
)

// Charset pairs a category with the alphabet its candidates are drawn from.
type Charset struct {
	Category Category
	Alphabet string
}

// PoolSpec describes how many candidates of which length a pool holds.
type PoolSpec struct {
	Charset Charset
	Count   int
	Length  int
}

// Pool is an ordered list of replacement strings generated once per run.
type Pool struct {
	Spec       PoolSpec
	Candidates []string
}

// Mutation is a seed variant with the byte at Position replaced by Candidate.
type Mutation struct {
	ID        int      `yaml:"id"` // 1-based index in the mutation sequence
	Position  int      `yaml:"position"`
	PoolIndex int      `yaml:"pool"`
	Category  Category `yaml:"category"`
	Candidate string   `yaml:"candidate"`
	Input     string   `yaml:"input"`
}

// Estimation summarizes the mutation sequence a seed and its pools yield.
type Estimation struct {
	Seed    string
	Pools   []Pool
	PerPool []int // mutations contributed by each pool
	Total   int
	Planned int // tests a run would execute, capped by the max tests setting
}
