package analysis

import (
	"sort"
	"unicode/utf8"

	"github.com/pipekit/pipekit/social"
)

// CountryCount is one entry of the per-country ranking.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// LikesBucket is one bar of the likes histogram.
type LikesBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds aggregate statistics over a comment collection.
type Summary struct {
	Total              int            `json:"total"`
	Positive           int            `json:"positive"`
	Negative           int            `json:"negative"`
	PositivePercentage float64        `json:"positive_percentage"`
	NegativePercentage float64        `json:"negative_percentage"`
	AvgLikes           float64        `json:"avg_likes"`
	MinLikes           int            `json:"min_likes"`
	MaxLikes           int            `json:"max_likes"`
	UniqueCountries    int            `json:"unique_countries"`
	UniqueUsers        int            `json:"unique_users"`
	AvgTextLength      float64        `json:"avg_text_length"`
	TopCountries       []CountryCount `json:"top_countries"`
	LikesHistogram     []LikesBucket  `json:"likes_histogram"`
}

// TopCountriesLimit bounds the per-country ranking in a Summary.
const TopCountriesLimit = 5

// Summarize computes a Summary over comments. An empty input yields a
// zero-valued Summary.
func Summarize(comments []social.Comment) Summary {
	s := Summary{Total: len(comments)}
	if s.Total == 0 {
		return s
	}

	countries := make(map[string]int)
	users := make(map[string]struct{})
	buckets := map[string]int{"0-10": 0, "11-50": 0, "51-100": 0, "100+": 0}

	var likesSum, textSum int
	s.MinLikes = comments[0].Likes
	for _, c := range comments {
		if c.Sentiment == social.SentimentPositive {
			s.Positive++
		} else {
			s.Negative++
		}
		likesSum += c.Likes
		if c.Likes < s.MinLikes {
			s.MinLikes = c.Likes
		}
		if c.Likes > s.MaxLikes {
			s.MaxLikes = c.Likes
		}
		switch {
		case c.Likes <= 10:
			buckets["0-10"]++
		case c.Likes <= 50:
			buckets["11-50"]++
		case c.Likes <= 100:
			buckets["51-100"]++
		default:
			buckets["100+"]++
		}
		countries[c.Country]++
		users[c.User] = struct{}{}
		textSum += utf8.RuneCountInString(c.Text)
	}

	total := float64(s.Total)
	s.PositivePercentage = float64(s.Positive) / total * 100
	s.NegativePercentage = float64(s.Negative) / total * 100
	s.AvgLikes = float64(likesSum) / total
	s.AvgTextLength = float64(textSum) / total
	s.UniqueCountries = len(countries)
	s.UniqueUsers = len(users)
	s.TopCountries = topCountries(countries, TopCountriesLimit)
	for _, label := range []string{"0-10", "11-50", "51-100", "100+"} {
		s.LikesHistogram = append(s.LikesHistogram, LikesBucket{Label: label, Count: buckets[label]})
	}
	return s
}

func topCountries(counts map[string]int, limit int) []CountryCount {
	ranking := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		ranking = append(ranking, CountryCount{Country: country, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Country < ranking[j].Country
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
