package heading

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var acronyms = wordSet(
	// government & military
	"cia", "fbi", "nsa", "dea", "atf", "fema", "nasa", "nato", "un", "unesco", "wto", "eu", "uk",
	"uss", "usa", "ussr", "kgb", "mi5", "mi6", "irs", "ssn", "faa", "tsa", "dhs", "cdc", "fda",
	"nih", "epa", "usda", "ftc", "fcc",
	// technology
	"ai", "api", "ui", "ux", "url", "uri", "http", "https", "ftp", "ssh", "ssl", "tls", "ip",
	"tcp", "udp", "dns", "html", "css", "js", "json", "xml", "yaml", "csv", "pdf", "png", "jpeg",
	"gif", "svg", "mp3", "mp4", "avi", "gpu", "cpu", "usb", "hdd", "ssd", "lan", "wan", "vpn",
	"isp", "cdn", "b2b", "b2c", "crm", "erp", "cms", "sql", "nosql", "ide", "sdk", "ajax", "cli",
	"gui",
	// education & science
	"mit", "ucla", "ucsd", "phd", "md", "mba", "jd", "bs", "ba", "ma", "gre", "gmat", "lsat",
	"mcat", "gpa", "stem", "dna", "rna", "hiv", "mri", "ct", "ufo",
	// places
	"nyc", "sf", "dc", "tx", "ca", "ny", "fl", "nafta", "usmca",
	// common
	"tv", "pc", "diy", "faq", "asap", "rsvp", "vip", "iq", "eq", "bc", "bce", "ce", "pm", "ps",
	"pov", "fyi", "btw", "imho", "afaik", "tldr", "sfw", "nsfw",
	// vehicles & aviation
	"vin", "mpg", "hp", "rpm", "abs", "gps", "ils", "vfr", "ifr", "atc", "iata", "boac", "lhr", "jfk",
	// entertainment
	"imax", "hd", "uhd", "dvd", "cd", "lp", "ep", "dj", "mc", "pg", "hbo", "bbc", "cnn", "nbc",
	"cbs", "abc", "mtv", "vh1",
	// sports
	"nba", "nfl", "mlb", "nhl", "mls", "fifa", "uefa", "nascar", "ncaa", "mvp", "pga", "lpga",
	"atp", "wta", "espn",
)

var minorWords = wordSet(
	"a", "an", "the", "and", "or", "but", "nor",
	"for", "yet", "so", "as", "at", "by", "in",
	"of", "on", "to", "up", "with", "from", "into",
	"is", "are", "was", "were", "be", "has", "have",
	"had", "do", "does", "did",
)
