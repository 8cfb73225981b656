package configs

// Assembly bounds the deck-assembly pipeline.
type Assembly struct {
	// MaxConcurrent is the number of uploads processed at once; further
	// requests queue until a slot frees.
	MaxConcurrent int `env:"MAX_CONCURRENT" envDefault:"2"`
}
