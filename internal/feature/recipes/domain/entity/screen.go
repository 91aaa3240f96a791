package entity

// ScreenVerdict is the safe-search result for a recipe image.
// Likelihood values follow the Vision API scale, from "VERY_UNLIKELY"
// to "VERY_LIKELY".
type ScreenVerdict struct {
	// Adult is the likelihood that the image contains adult content.
	Adult string

	// Violence is the likelihood that the image contains violent content.
	Violence string

	// Racy is the likelihood that the image contains racy content.
	Racy string

	// Flagged is true when any likelihood is LIKELY or above.
	Flagged bool
}
