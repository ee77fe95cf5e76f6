package brandforge

// stopWords are dropped during tokenization.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "for": {}, "in": {}, "my": {},
	"of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "with": {},
}

// DefaultPrefixes and DefaultSuffixes are the affixes used when the caller
// configures none.
var DefaultPrefixes = []string{"get", "go", "my", "try", "use"}

var DefaultSuffixes = []string{"app", "hq", "hub", "ify", "lab", "ly"}

// DefaultTLDs is the TLD priority order used when the caller supplies none.
var DefaultTLDs = []string{"com", "io", "co", "net", "org"}

// DefaultTLDWeights is the builtin trust/popularity table consulted by the
// scoring engine. Unlisted TLDs weigh 0.
var DefaultTLDWeights = map[string]float64{
	"com": 20,
	"io":  15,
	"ai":  12,
	"net": 10,
	"org": 10,
	"co":  8,
	"app": 8,
	"dev": 8,
}

// DefaultThesaurus is the builtin synonym table backing the expander when
// no external dictionary provider is configured.
var DefaultThesaurus = StaticThesaurus{
	"big":    {"grand", "large", "mega", "vast"},
	"brand":  {"label", "mark", "name"},
	"build":  {"craft", "forge", "make"},
	"buy":    {"get", "order", "purchase", "shop"},
	"cheap":  {"budget", "thrifty", "value"},
	"cloud":  {"nimbus", "sky"},
	"code":   {"dev", "program", "script"},
	"data":   {"info", "insight", "stats"},
	"easy":   {"simple", "smooth", "swift"},
	"fast":   {"quick", "rapid", "speedy", "swift"},
	"find":   {"discover", "locate", "search", "seek"},
	"food":   {"dish", "eats", "meal"},
	"good":   {"fine", "great", "prime"},
	"green":  {"eco", "leaf", "verdant"},
	"health": {"fit", "vital", "wellness"},
	"help":   {"aid", "assist", "support"},
	"home":   {"house", "nest", "place"},
	"learn":  {"master", "study", "train"},
	"money":  {"cash", "coin", "funds"},
	"new":    {"fresh", "modern", "novel"},
	"pay":    {"billing", "checkout", "spend"},
	"run":    {"dash", "race", "sprint"},
	"safe":   {"guard", "secure", "shield"},
	"sell":   {"market", "trade", "vend"},
	"shop":   {"mart", "market", "store"},
	"smart":  {"bright", "clever", "wise"},
	"talk":   {"chat", "speak", "voice"},
	"team":   {"crew", "group", "squad"},
	"tech":   {"digital", "technology"},
	"travel": {"journey", "trip", "voyage"},
	"work":   {"craft", "labor", "task"},
}

// DefaultDictionary backs the dictionary-word brandability bonuses when no
// external word set is supplied.
var DefaultDictionary = NewDictionary([]string{
	"aid", "app", "base", "bay", "bit", "box", "brand", "bright", "buy",
	"cash", "chat", "city", "clever", "cloud", "code", "coin", "craft",
	"crew", "dash", "data", "deal", "dev", "dish", "dock", "earth", "easy",
	"eco", "fast", "find", "fine", "fire", "fit", "flow", "food", "forge",
	"fox", "fresh", "fund", "gear", "go", "good", "grand", "great", "green",
	"grid", "guard", "hive", "home", "house", "hub", "info", "jet", "lab",
	"land", "large", "leaf", "learn", "light", "line", "link", "lion",
	"loop", "mark", "market", "mart", "mega", "mind", "mint", "modern",
	"money", "moon", "nest", "net", "new", "nova", "pay", "peak", "pixel",
	"place", "play", "point", "prime", "pulse", "quick", "race", "rapid",
	"rise", "rock", "run", "safe", "sea", "search", "secure", "sell",
	"shield", "ship", "shop", "simple", "sky", "smart", "snap", "spark",
	"speedy", "spot", "sprint", "star", "store", "swift", "talk", "task",
	"team", "tech", "tide", "trade", "trail", "train", "travel", "tree",
	"trip", "vault", "vital", "voice", "wave", "way", "web", "wise", "work",
	"world", "zen", "zone",
})
