package analyze

// polarityLexicon maps a token to an integer polarity in [-5, 5],
// AFINN-style. Tokens absent from the map score 0.
var polarityLexicon = map[string]int{
	// Strongly positive
	"outstanding": 5, "superb": 5, "breathtaking": 5,
	"amazing": 4, "awesome": 4, "brilliant": 4, "fantastic": 4,
	"incredible": 4, "wonderful": 4, "marvelous": 4, "exceptional": 4,
	"thrilled": 4, "exhilarating": 4,
	// Positive
	"great": 3, "excellent": 3, "love": 3, "loved": 3, "loves": 3,
	"beautiful": 3, "delighted": 3, "perfect": 3, "impressive": 3,
	"magnificent": 3, "superior": 3, "triumphant": 3, "joy": 3,
	"good": 2, "happy": 2, "nice": 2, "pleasant": 2, "enjoy": 2,
	"enjoyed": 2, "recommend": 2, "recommended": 2, "satisfied": 2,
	"useful": 2, "helpful": 2, "reliable": 2, "smooth": 2, "solid": 2,
	"fresh": 2, "friendly": 2, "glad": 2, "win": 2, "winner": 2,
	"clean": 1, "fine": 1, "okay": 1, "decent": 1, "fair": 1,
	"worked": 1, "works": 1, "better": 1, "improved": 1, "improvement": 1,
	"interesting": 1, "easy": 1, "fast": 1, "cheap": 1,
	// Negative
	"slow": -1, "noisy": -1, "pricey": -1, "odd": -1, "meh": -1,
	"flawed": -1, "lacking": -1, "mediocre": -1, "weak": -1,
	"bad": -2, "poor": -2, "annoying": -2, "boring": -2, "broken": -2,
	"disappointed": -2, "disappointing": -2, "frustrating": -2,
	"unreliable": -2, "useless": -2, "ugly": -2, "dirty": -2,
	"overpriced": -2, "defective": -2, "fail": -2, "failed": -2,
	"fails": -2, "failure": -2, "problem": -2, "problems": -2,
	"sad": -2, "angry": -2, "worse": -2, "wrong": -2,
	"terrible": -3, "awful": -3, "horrible": -3, "hate": -3,
	"hated": -3, "hates": -3, "dreadful": -3, "disgusting": -3,
	"worthless": -3, "worst": -3, "garbage": -3, "pathetic": -3,
	"miserable": -3, "unacceptable": -3, "furious": -3,
	// Strongly negative
	"atrocious": -4, "abysmal": -4, "horrendous": -4, "appalling": -4,
	"catastrophic": -4, "scam": -4, "fraud": -4,
	"disastrous": -5, "nightmare": -5,
}
