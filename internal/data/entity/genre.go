package entity

// Genres is the fixed list a movie's genre set must draw from.
var Genres = []string{
	"Action", "Adventure", "Animation", "Biography", "Comedy",
	"Crime", "Documentary", "Drama", "Family", "Fantasy",
	"Horror", "Music", "Mystery", "Mythology", "Romance",
	"Sci-Fi", "Sport", "Thriller",
}

var genreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Genres))
	for _, g := range Genres {
		set[g] = struct{}{}
	}
	return set
}()

func IsValidGenre(genre string) bool {
	_, ok := genreSet[genre]
	return ok
}

// InvalidGenres returns the entries of genres that are not in the fixed list.
func InvalidGenres(genres []string) []string {
	var invalid []string
	for _, g := range genres {
		if !IsValidGenre(g) {
			invalid = append(invalid, g)
		}
	}
	return invalid
}
