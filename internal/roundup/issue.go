package roundup

// AssembleIssue builds the record for one issue page. Each field is
// extracted on its own; a missing one never stops the others.
func AssembleIssue(raw string) (ComicInfo, error) {
	doc, err := Parse(raw)
	if err != nil {
		return ComicInfo{}, err
	}

	return ComicInfo{
		ID:                issueID(doc),
		Name:              issueName(doc),
		Writers:           splitNames(WriterRule.Extract(doc)),
		Artists:           splitNames(ArtistRule.Extract(doc)),
		Publisher:         PublisherRule.Extract(doc),
		ReleaseDate:       ReleaseDateRule.Extract(doc),
		CoverPrice:        CoverPriceRule.Extract(doc),
		CriticReviewCount: CriticCountRule.Extract(doc),
		UserReviewCount:   UserCountRule.Extract(doc),
		CriticReviewScore: CriticRatingRule.Extract(doc),
		UserReviewScore:   UserRatingRule.Extract(doc),
	}, nil
}
