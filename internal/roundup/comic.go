package roundup

// ComicInfo is one issue's metadata. A nil field was not located on the
// page and is left out of the JSON entirely.
type ComicInfo struct {
	ID                *string  `json:"id,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Writers           []string `json:"writers,omitempty"`
	Artists           []string `json:"artists,omitempty"`
	Publisher         *string  `json:"publisher,omitempty"`
	ReleaseDate       *string  `json:"release_date,omitempty"`
	CoverPrice        *string  `json:"cover_price,omitempty"`
	CriticReviewCount *string  `json:"critic_review_count,omitempty"`
	UserReviewCount   *string  `json:"user_review_count,omitempty"`
	CriticReviewScore *string  `json:"critic_review_score,omitempty"`
	UserReviewScore   *string  `json:"user_review_score,omitempty"`
}

// Comic is one entry of a publisher's series listing. URL is always absolute.
type Comic struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PublisherComics struct {
	Comics []Comic `json:"comics"`
}

type ComicIssues struct {
	URLs []string `json:"urls"`
}

type Publisher struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
