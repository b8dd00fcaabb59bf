package politics

// Keyword lexicons are immutable configuration data: loaded once, never
// mutated. Entries are curated to avoid overlap across the three political
// lists; the classifier does not enforce non-overlap structurally, so an
// overlapping pair would be double-counted.

var leftKeywords = []string{
	"medicare for all",
	"green new deal",
	"bernie sanders",
	"alexandria ocasio-cortez",
	"elizabeth warren",
	"universal healthcare",
	"single payer",
	"abortion rights",
	"reproductive rights",
	"gun control",
	"assault weapons ban",
	"minimum wage increase",
	"student loan forgiveness",
	"voting rights act",
	"climate action",
	"wealth tax",
	"planned parenthood",
	"black lives matter",
	"union organizing",
	"progressive",
	"democrat",
	"democratic party",
	"lgbtq rights",
	"public option",
}

var rightKeywords = []string{
	"border wall",
	"trump",
	"maga",
	"second amendment",
	"gun rights",
	"pro-life",
	"tax cuts",
	"school choice",
	"illegal immigration",
	"election integrity",
	"religious liberty",
	"deregulation",
	"ron desantis",
	"back the blue",
	"parental rights",
	"balanced budget",
	"republican",
	"conservative",
	"america first",
	"right to work",
}

var centristKeywords = []string{
	"bipartisan",
	"compromise",
	"across the aisle",
	"moderate",
	"centrist",
	"swing state",
	"independent voter",
	"common ground",
	"coalition",
}

// nonPolitical marks a topic as out of scope for leaning classification.
// It takes precedence over every political keyword: "election weather
// forecast" is a weather topic, not a political one.
var nonPolitical = []string{
	// weather
	"weather", "forecast", "hurricane", "tornado", "blizzard", "heat wave",
	// sports
	"nba", "nfl", "mlb", "nhl", "ncaa", "super bowl", "world series",
	"playoffs", "touchdown", "basketball", "football score", "baseball",
	// entertainment
	"movie", "trailer", "box office", "album", "concert", "celebrity",
	"grammy", "oscars", "netflix", "season finale",
	// health
	"recipe", "workout", "fitness", "diet", "symptoms", "flu season",
	// science
	"nasa", "eclipse", "meteor", "spacex launch", "asteroid",
}

// categoryLexicons maps coarse category names to their keyword groups,
// checked in order.
var categoryLexicons = []struct {
	name     string
	keywords []string
}{
	{"weather", []string{"weather", "forecast", "hurricane", "tornado", "blizzard", "heat wave", "storm warning"}},
	{"sports", []string{"nba", "nfl", "mlb", "nhl", "ncaa", "super bowl", "world series", "playoffs", "touchdown", "basketball", "football score", "baseball"}},
	{"entertainment", []string{"movie", "trailer", "box office", "album", "concert", "celebrity", "grammy", "oscars", "netflix", "season finale"}},
	{"health", []string{"recipe", "workout", "fitness", "diet", "symptoms", "flu season"}},
	{"science", []string{"nasa", "eclipse", "meteor", "spacex launch", "asteroid"}},
}
