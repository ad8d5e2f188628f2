package chapters

// NoThumbnail is returned by IndexFor when there are no pages.
const NoThumbnail = -1

// IndexFor maps an episode ordinal linearly onto the page range so that the
// first episode lands on page 0 and the last on the final page.
//
// Ties round half away from zero: 0.5 becomes 1 and 1.5 becomes 2. The
// computation stays in integers so ties are exact.
func IndexFor(ordinal, totalEpisodes, totalPages int) int {
	if totalPages <= 0 {
		return NoThumbnail
	}
	if totalEpisodes <= 1 {
		return 0
	}

	ordinal = max(0, min(ordinal, totalEpisodes-1))
	span := totalEpisodes - 1
	return (2*ordinal*(totalPages-1) + span) / (2 * span)
}
