package classify

// AliasEntry tags one alias phrase with its team code and the league it
// belongs to. Tagging by league lets an alias shared across leagues
// ("cardinals", "giants", "rangers") resolve against the item's sport instead
// of one league silently shadowing the other. Table order is the residual
// tie-break when no sport is known.
type AliasEntry struct {
	Alias  string
	Code   string
	League string
}

// teamAliases covers current names, nicknames, common shortenings, and
// historical names. Codes are pragmatic, not official; college codes carry a
// suffix where they would collide with a pro code.
var teamAliases = []AliasEntry{
	// =========================
	// NFL (32)
	// =========================
	{"arizona", "ARI", "nfl"},
	{"arizona cardinals", "ARI", "nfl"},
	{"cardinals", "ARI", "nfl"},

	{"atlanta", "ATL", "nfl"},
	{"atlanta falcons", "ATL", "nfl"},
	{"falcons", "ATL", "nfl"},

	{"baltimore", "BAL", "nfl"},
	{"baltimore ravens", "BAL", "nfl"},
	{"ravens", "BAL", "nfl"},

	{"buffalo", "BUF", "nfl"},
	{"buffalo bills", "BUF", "nfl"},
	{"bills", "BUF", "nfl"},

	{"carolina", "CAR", "nfl"},
	{"carolina panthers", "CAR", "nfl"},
	{"panthers", "CAR", "nfl"},

	{"chicago", "CHI", "nfl"},
	{"chicago bears", "CHI", "nfl"},
	{"bears", "CHI", "nfl"},

	{"cincinnati", "CIN", "nfl"},
	{"cincinnati bengals", "CIN", "nfl"},
	{"bengals", "CIN", "nfl"},

	{"cleveland", "CLE", "nfl"},
	{"cleveland browns", "CLE", "nfl"},
	{"browns", "CLE", "nfl"},

	{"dallas", "DAL", "nfl"},
	{"dallas cowboys", "DAL", "nfl"},
	{"cowboys", "DAL", "nfl"},

	{"denver", "DEN", "nfl"},
	{"denver broncos", "DEN", "nfl"},
	{"broncos", "DEN", "nfl"},

	{"detroit", "DET", "nfl"},
	{"detroit lions", "DET", "nfl"},
	{"lions", "DET", "nfl"},

	{"green bay", "GB", "nfl"},
	{"green bay packers", "GB", "nfl"},
	{"packers", "GB", "nfl"},

	{"houston", "HOU", "nfl"},
	{"houston texans", "HOU", "nfl"},
	{"texans", "HOU", "nfl"},

	{"indianapolis", "IND", "nfl"},
	{"indianapolis colts", "IND", "nfl"},
	{"colts", "IND", "nfl"},

	{"jacksonville", "JAX", "nfl"},
	{"jacksonville jaguars", "JAX", "nfl"},
	{"jaguars", "JAX", "nfl"},
	{"jags", "JAX", "nfl"},

	{"kansas city", "KC", "nfl"},
	{"kansas city chiefs", "KC", "nfl"},
	{"chiefs", "KC", "nfl"},

	{"las vegas", "LV", "nfl"},
	{"las vegas raiders", "LV", "nfl"},
	{"raiders", "LV", "nfl"},
	{"oakland raiders", "LV", "nfl"},      // legacy
	{"los angeles raiders", "LV", "nfl"},  // legacy

	{"los angeles chargers", "LAC", "nfl"},
	{"la chargers", "LAC", "nfl"},
	{"chargers", "LAC", "nfl"},
	{"san diego chargers", "LAC", "nfl"}, // legacy

	{"los angeles rams", "LAR", "nfl"},
	{"la rams", "LAR", "nfl"},
	{"rams", "LAR", "nfl"},
	{"st. louis rams", "LAR", "nfl"},
	{"st louis rams", "LAR", "nfl"},

	{"miami", "MIA", "nfl"},
	{"miami dolphins", "MIA", "nfl"},
	{"dolphins", "MIA", "nfl"},

	{"minnesota", "MIN", "nfl"},
	{"minnesota vikings", "MIN", "nfl"},
	{"vikings", "MIN", "nfl"},

	{"new england", "NE", "nfl"},
	{"new england patriots", "NE", "nfl"},
	{"patriots", "NE", "nfl"},
	{"pats", "NE", "nfl"},

	{"new orleans", "NO", "nfl"},
	{"new orleans saints", "NO", "nfl"},
	{"saints", "NO", "nfl"},

	{"new york giants", "NYG", "nfl"},
	{"ny giants", "NYG", "nfl"},
	{"giants", "NYG", "nfl"},

	{"new york jets", "NYJ", "nfl"},
	{"ny jets", "NYJ", "nfl"},
	{"jets", "NYJ", "nfl"},

	{"philadelphia", "PHI", "nfl"},
	{"philadelphia eagles", "PHI", "nfl"},
	{"eagles", "PHI", "nfl"},

	{"pittsburgh", "PIT", "nfl"},
	{"pittsburgh steelers", "PIT", "nfl"},
	{"steelers", "PIT", "nfl"},

	{"san francisco", "SF", "nfl"},
	{"san francisco 49ers", "SF", "nfl"},
	{"49ers", "SF", "nfl"},
	{"niners", "SF", "nfl"},

	{"seattle", "SEA", "nfl"},
	{"seattle seahawks", "SEA", "nfl"},
	{"seahawks", "SEA", "nfl"},

	{"tampa bay", "TB", "nfl"},
	{"tampa bay buccaneers", "TB", "nfl"},
	{"buccaneers", "TB", "nfl"},
	{"bucs", "TB", "nfl"},

	{"tennessee", "TEN", "nfl"},
	{"tennessee titans", "TEN", "nfl"},
	{"titans", "TEN", "nfl"},
	{"houston oilers", "TEN", "nfl"}, // legacy

	{"washington", "WAS", "nfl"},
	{"washington commanders", "WAS", "nfl"},
	{"commanders", "WAS", "nfl"},
	{"washington football team", "WAS", "nfl"},
	{"washington redskins", "WAS", "nfl"},

	// =========================
	// NBA (30)
	// =========================
	{"atlanta hawks", "ATL", "nba"},
	{"hawks", "ATL", "nba"},

	{"boston celtics", "BOS", "nba"},
	{"celtics", "BOS", "nba"},

	{"brooklyn nets", "BKN", "nba"},
	{"nets", "BKN", "nba"},
	{"new jersey nets", "BKN", "nba"},

	{"charlotte hornets", "CHA", "nba"},
	{"hornets", "CHA", "nba"},

	{"chicago bulls", "CHI", "nba"},
	{"bulls", "CHI", "nba"},

	{"cleveland cavaliers", "CLE", "nba"},
	{"cavaliers", "CLE", "nba"},
	{"cavs", "CLE", "nba"},

	{"dallas mavericks", "DAL", "nba"},
	{"mavericks", "DAL", "nba"},
	{"mavs", "DAL", "nba"},

	{"denver nuggets", "DEN", "nba"},
	{"nuggets", "DEN", "nba"},

	{"detroit pistons", "DET", "nba"},
	{"pistons", "DET", "nba"},

	{"golden state warriors", "GSW", "nba"},
	{"warriors", "GSW", "nba"},

	{"houston rockets", "HOU", "nba"},
	{"rockets", "HOU", "nba"},

	{"indiana pacers", "IND", "nba"},
	{"pacers", "IND", "nba"},

	{"la clippers", "LAC", "nba"},
	{"los angeles clippers", "LAC", "nba"},
	{"clippers", "LAC", "nba"},

	{"la lakers", "LAL", "nba"},
	{"los angeles lakers", "LAL", "nba"},
	{"lakers", "LAL", "nba"},

	{"memphis grizzlies", "MEM", "nba"},
	{"grizzlies", "MEM", "nba"},

	{"miami heat", "MIA", "nba"},
	{"heat", "MIA", "nba"},

	{"milwaukee bucks", "MIL", "nba"},
	{"bucks", "MIL", "nba"},

	{"minnesota timberwolves", "MIN", "nba"},
	{"timberwolves", "MIN", "nba"},
	{"wolves", "MIN", "nba"},

	{"new orleans pelicans", "NOP", "nba"},
	{"pelicans", "NOP", "nba"},

	{"new york knicks", "NYK", "nba"},
	{"ny knicks", "NYK", "nba"},
	{"knicks", "NYK", "nba"},

	{"oklahoma city thunder", "OKC", "nba"},
	{"thunder", "OKC", "nba"},
	{"seattle supersonics", "OKC", "nba"}, // legacy

	{"orlando magic", "ORL", "nba"},
	{"magic", "ORL", "nba"},

	{"philadelphia 76ers", "PHI", "nba"},
	{"76ers", "PHI", "nba"},
	{"sixers", "PHI", "nba"},

	{"phoenix suns", "PHX", "nba"},
	{"suns", "PHX", "nba"},

	{"portland trail blazers", "POR", "nba"},
	{"trail blazers", "POR", "nba"},
	{"blazers", "POR", "nba"},

	{"sacramento kings", "SAC", "nba"},
	{"kings", "SAC", "nba"},

	{"san antonio spurs", "SAS", "nba"},
	{"spurs", "SAS", "nba"},

	{"toronto raptors", "TOR", "nba"},
	{"raptors", "TOR", "nba"},

	{"utah jazz", "UTA", "nba"},
	{"jazz", "UTA", "nba"},

	{"washington wizards", "WAS", "nba"},
	{"wizards", "WAS", "nba"},

	// =========================
	// MLB (30)
	// =========================
	{"arizona diamondbacks", "ARI", "mlb"},
	{"diamondbacks", "ARI", "mlb"},
	{"d-backs", "ARI", "mlb"},
	{"dbacks", "ARI", "mlb"},

	{"atlanta braves", "ATL", "mlb"},
	{"braves", "ATL", "mlb"},

	{"baltimore orioles", "BAL", "mlb"},
	{"orioles", "BAL", "mlb"},
	{"o's", "BAL", "mlb"},

	{"boston red sox", "BOS", "mlb"},
	{"red sox", "BOS", "mlb"},

	{"chicago cubs", "CHC", "mlb"},
	{"cubs", "CHC", "mlb"},

	{"chicago white sox", "CWS", "mlb"},
	{"white sox", "CWS", "mlb"},

	{"cincinnati reds", "CIN", "mlb"},
	{"reds", "CIN", "mlb"},

	{"cleveland guardians", "CLE", "mlb"},
	{"guardians", "CLE", "mlb"},
	{"cleveland indians", "CLE", "mlb"}, // legacy

	{"colorado rockies", "COL", "mlb"},
	{"rockies", "COL", "mlb"},

	{"detroit tigers", "DET", "mlb"},
	{"tigers", "DET", "mlb"},

	{"houston astros", "HOU", "mlb"},
	{"astros", "HOU", "mlb"},

	{"kansas city royals", "KC", "mlb"},
	{"royals", "KC", "mlb"},

	{"los angeles angels", "LAA", "mlb"},
	{"la angels", "LAA", "mlb"},
	{"angels", "LAA", "mlb"},
	{"anaheim angels", "LAA", "mlb"},
	{"los angeles angels of anaheim", "LAA", "mlb"},

	{"los angeles dodgers", "LAD", "mlb"},
	{"la dodgers", "LAD", "mlb"},
	{"dodgers", "LAD", "mlb"},

	{"miami marlins", "MIA", "mlb"},
	{"marlins", "MIA", "mlb"},
	{"florida marlins", "MIA", "mlb"},

	{"milwaukee brewers", "MIL", "mlb"},
	{"brewers", "MIL", "mlb"},

	{"minnesota twins", "MIN", "mlb"},
	{"twins", "MIN", "mlb"},

	{"new york mets", "NYM", "mlb"},
	{"ny mets", "NYM", "mlb"},
	{"mets", "NYM", "mlb"},

	{"new york yankees", "NYY", "mlb"},
	{"ny yankees", "NYY", "mlb"},
	{"yankees", "NYY", "mlb"},

	{"oakland athletics", "OAK", "mlb"},
	{"athletics", "OAK", "mlb"},
	{"a's", "OAK", "mlb"},
	{"oakland a's", "OAK", "mlb"},

	{"philadelphia phillies", "PHI", "mlb"},
	{"phillies", "PHI", "mlb"},

	{"pittsburgh pirates", "PIT", "mlb"},
	{"pirates", "PIT", "mlb"},

	{"san diego padres", "SD", "mlb"},
	{"padres", "SD", "mlb"},

	{"san francisco giants", "SF", "mlb"},
	{"sf giants", "SF", "mlb"},
	{"giants", "SF", "mlb"}, // ambiguous with NYG; sport resolves
	{"san fran giants", "SF", "mlb"},

	{"seattle mariners", "SEA", "mlb"},
	{"mariners", "SEA", "mlb"},

	{"st. louis cardinals", "STL", "mlb"},
	{"st louis cardinals", "STL", "mlb"},
	{"cardinals", "STL", "mlb"}, // ambiguous with NFL ARI; sport resolves
	{"cards", "STL", "mlb"},

	{"tampa bay rays", "TB", "mlb"},
	{"rays", "TB", "mlb"},
	{"tampa bay devil rays", "TB", "mlb"},
	{"devil rays", "TB", "mlb"},

	{"texas rangers", "TEX", "mlb"},
	{"rangers", "TEX", "mlb"}, // ambiguous with NHL NYR; sport resolves

	{"toronto blue jays", "TOR", "mlb"},
	{"blue jays", "TOR", "mlb"},
	{"jays", "TOR", "mlb"},

	{"washington nationals", "WSH", "mlb"},
	{"nationals", "WSH", "mlb"},
	{"nats", "WSH", "mlb"},
	{"montreal expos", "WSH", "mlb"}, // legacy

	// =========================
	// NHL (32)
	// =========================
	{"anaheim ducks", "ANA", "nhl"},
	{"ducks", "ANA", "nhl"},

	{"boston bruins", "BOS", "nhl"},
	{"bruins", "BOS", "nhl"},

	{"buffalo sabres", "BUF", "nhl"},
	{"sabres", "BUF", "nhl"},

	{"calgary flames", "CGY", "nhl"},
	{"flames", "CGY", "nhl"},

	{"carolina hurricanes", "CAR", "nhl"},
	{"hurricanes", "CAR", "nhl"},

	{"chicago blackhawks", "CHI", "nhl"},
	{"blackhawks", "CHI", "nhl"},

	{"colorado avalanche", "COL", "nhl"},
	{"avalanche", "COL", "nhl"},
	{"avs", "COL", "nhl"},

	{"columbus blue jackets", "CBJ", "nhl"},
	{"blue jackets", "CBJ", "nhl"},

	{"dallas stars", "DAL", "nhl"},
	{"stars", "DAL", "nhl"},

	{"detroit red wings", "DET", "nhl"},
	{"red wings", "DET", "nhl"},

	{"edmonton oilers", "EDM", "nhl"},
	{"oilers", "EDM", "nhl"},

	{"florida panthers", "FLA", "nhl"},

	{"los angeles kings", "LAK", "nhl"},
	{"la kings", "LAK", "nhl"},

	{"minnesota wild", "MIN", "nhl"},
	{"wild", "MIN", "nhl"},

	{"montreal canadiens", "MTL", "nhl"},
	{"canadiens", "MTL", "nhl"},
	{"habs", "MTL", "nhl"},

	{"nashville predators", "NSH", "nhl"},
	{"predators", "NSH", "nhl"},
	{"preds", "NSH", "nhl"},

	{"new jersey devils", "NJD", "nhl"},
	{"devils", "NJD", "nhl"},

	{"new york islanders", "NYI", "nhl"},
	{"islanders", "NYI", "nhl"},
	{"isles", "NYI", "nhl"},

	{"new york rangers", "NYR", "nhl"},
	{"ny rangers", "NYR", "nhl"},

	{"ottawa senators", "OTT", "nhl"},
	{"senators", "OTT", "nhl"},
	{"sens", "OTT", "nhl"},

	{"philadelphia flyers", "PHI", "nhl"},
	{"flyers", "PHI", "nhl"},

	{"pittsburgh penguins", "PIT", "nhl"},
	{"penguins", "PIT", "nhl"},
	{"pens", "PIT", "nhl"},

	{"san jose sharks", "SJS", "nhl"},
	{"sharks", "SJS", "nhl"},

	{"seattle kraken", "SEA", "nhl"},
	{"kraken", "SEA", "nhl"},

	{"st. louis blues", "STL", "nhl"},
	{"st louis blues", "STL", "nhl"},
	{"blues", "STL", "nhl"},

	{"tampa bay lightning", "TBL", "nhl"},
	{"lightning", "TBL", "nhl"},
	{"bolts", "TBL", "nhl"},

	{"toronto maple leafs", "TOR", "nhl"},
	{"maple leafs", "TOR", "nhl"},
	{"leafs", "TOR", "nhl"},

	{"utah hockey club", "UTA", "nhl"},

	{"vancouver canucks", "VAN", "nhl"},
	{"canucks", "VAN", "nhl"},

	{"vegas golden knights", "VGK", "nhl"},
	{"golden knights", "VGK", "nhl"},

	{"washington capitals", "WSH", "nhl"},
	{"capitals", "WSH", "nhl"},
	{"caps", "WSH", "nhl"},

	{"winnipeg jets", "WPG", "nhl"},

	// =========================
	// CFB (major programs)
	// =========================
	{"alabama", "BAMA", "cfb"},
	{"crimson tide", "BAMA", "cfb"},
	{"bama", "BAMA", "cfb"},

	{"georgia", "UGA", "cfb"},
	{"bulldogs", "UGA", "cfb"},
	{"uga", "UGA", "cfb"},

	{"ohio state", "OSU", "cfb"},
	{"buckeyes", "OSU", "cfb"},
	{"osu", "OSU", "cfb"},

	{"michigan", "MICH", "cfb"},
	{"wolverines", "MICH", "cfb"},

	{"penn state", "PSU", "cfb"},
	{"nittany lions", "PSU", "cfb"},
	{"psu", "PSU", "cfb"},

	{"notre dame", "ND", "cfb"},
	{"fighting irish", "ND", "cfb"},

	{"lsu", "LSU", "cfb"},

	{"clemson", "CLEM", "cfb"},
	{"clemson tigers", "CLEM", "cfb"},

	{"florida state", "FSU", "cfb"},
	{"seminoles", "FSU", "cfb"},
	{"fsu", "FSU", "cfb"},

	{"florida gators", "FLA", "cfb"},
	{"florida", "FLA", "cfb"},
	{"gators", "FLA", "cfb"},

	{"miami hurricanes", "MIA_CFB", "cfb"},
	{"miami", "MIA_CFB", "cfb"},

	{"usc", "USC", "cfb"},
	{"southern cal", "USC", "cfb"},
	{"southern california", "USC", "cfb"},
	{"trojans", "USC", "cfb"},

	{"ucla", "UCLA", "cfb"},

	{"texas", "TEX_CFB", "cfb"},
	{"longhorns", "TEX_CFB", "cfb"},
	{"ut austin", "TEX_CFB", "cfb"},

	{"oklahoma", "OU", "cfb"},
	{"sooners", "OU", "cfb"},
	{"ou", "OU", "cfb"},

	{"texas a&m", "TAMU", "cfb"},
	{"texas am", "TAMU", "cfb"},
	{"aggies", "TAMU", "cfb"},
	{"tamu", "TAMU", "cfb"},

	{"oregon", "ORE", "cfb"},
	{"ducks", "ORE", "cfb"},

	{"washington huskies", "UW", "cfb"},
	{"huskies", "UW", "cfb"},

	{"utah", "UTAH", "cfb"},
	{"utes", "UTAH", "cfb"},

	{"tcu", "TCU", "cfb"},
	{"horned frogs", "TCU", "cfb"},

	{"baylor", "BAY", "cfb"},

	{"oklahoma state", "OKST", "cfb"},
	{"cowboys", "OKST", "cfb"},
	{"okst", "OKST", "cfb"},

	{"kansas state", "KSU", "cfb"},
	{"wildcats", "KSU", "cfb"},

	{"kansas", "KU", "cfb"},
	{"jayhawks", "KU", "cfb"},

	{"iowa", "IOWA", "cfb"},
	{"hawkeyes", "IOWA", "cfb"},

	{"iowa state", "ISU", "cfb"},
	{"cyclones", "ISU", "cfb"},

	{"wisconsin", "WISC", "cfb"},
	{"badgers", "WISC", "cfb"},

	{"nebraska", "NEB", "cfb"},
	{"cornhuskers", "NEB", "cfb"},
	{"huskers", "NEB", "cfb"},

	{"minnesota golden gophers", "MINN", "cfb"},
	{"golden gophers", "MINN", "cfb"},
	{"gophers", "MINN", "cfb"},

	{"michigan state", "MSU", "cfb"},
	{"spartans", "MSU", "cfb"},
	{"msu", "MSU", "cfb"},

	{"indiana hoosiers", "IND_CFB", "cfb"},
	{"hoosiers", "IND_CFB", "cfb"},

	{"purdue", "PUR", "cfb"},
	{"boilermakers", "PUR", "cfb"},

	{"northwestern", "NW", "cfb"},
	{"wildcats", "NW", "cfb"},

	{"illinois", "ILL", "cfb"},
	{"fighting illini", "ILL", "cfb"},

	{"maryland", "MD", "cfb"},
	{"terrapins", "MD", "cfb"},
	{"terps", "MD", "cfb"},

	{"rutgers", "RUTG", "cfb"},
	{"scarlet knights", "RUTG", "cfb"},

	{"tennessee volunteers", "TENN", "cfb"},
	{"volunteers", "TENN", "cfb"},
	{"vols", "TENN", "cfb"},

	{"auburn", "AUB", "cfb"},
	{"auburn tigers", "AUB", "cfb"},

	{"ole miss", "MISS", "cfb"},
	{"mississippi", "MISS", "cfb"},
	{"rebels", "MISS", "cfb"},

	{"mississippi state", "MSST", "cfb"},

	{"kentucky", "UK", "cfb"},

	{"south carolina", "SCAR", "cfb"},
	{"gamecocks", "SCAR", "cfb"},

	{"arkansas", "ARK", "cfb"},
	{"razorbacks", "ARK", "cfb"},
	{"hogs", "ARK", "cfb"},

	{"missouri", "MIZ", "cfb"},

	{"vanderbilt", "VAND", "cfb"},
	{"commodores", "VAND", "cfb"},
	{"dores", "VAND", "cfb"},

	{"north carolina", "UNC", "cfb"},
	{"tar heels", "UNC", "cfb"},

	{"duke", "DUKE", "cfb"},
	{"blue devils", "DUKE", "cfb"},

	{"nc state", "NCSU", "cfb"},
	{"north carolina state", "NCSU", "cfb"},
	{"wolfpack", "NCSU", "cfb"},

	{"virginia tech", "VT", "cfb"},
	{"hokies", "VT", "cfb"},

	{"virginia", "UVA", "cfb"},
	{"hoos", "UVA", "cfb"},

	{"georgia tech", "GT", "cfb"},
	{"yellow jackets", "GT", "cfb"},

	{"syracuse", "SYR", "cfb"},

	{"pitt", "PITT", "cfb"},
	{"pittsburgh panthers", "PITT", "cfb"},

	{"west virginia", "WVU", "cfb"},
	{"mountaineers", "WVU", "cfb"},

	{"louisville", "LOU", "cfb"},

	{"ucf", "UCF", "cfb"},
	{"central florida", "UCF", "cfb"},

	{"cincinnati bearcats", "CIN_CFB", "cfb"},
	{"bearcats", "CIN_CFB", "cfb"},

	{"byu", "BYU", "cfb"},
	{"brigham young", "BYU", "cfb"},
	{"cougars", "BYU", "cfb"},
}
