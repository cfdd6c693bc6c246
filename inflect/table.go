package inflect

// formKey identifies a finite form in the table of irregular inflections.
type formKey struct {
	Lemma  string
	Tense  Tense
	Number Number
	Person Person
}

// finite forms of the copular, auxiliary and reporting verbs, which do not
// follow the regular suffixation.
var irregularForms = map[formKey]string{
	{"be", Present, Singular, First}:  "am",
	{"be", Present, Singular, Second}: "are",
	{"be", Present, Singular, Third}:  "is",
	{"be", Present, Plural, First}:    "are",
	{"be", Present, Plural, Second}:   "are",
	{"be", Present, Plural, Third}:    "are",
	{"be", Past, Singular, First}:     "was",
	{"be", Past, Singular, Second}:    "were",
	{"be", Past, Singular, Third}:     "was",
	{"be", Past, Plural, First}:       "were",
	{"be", Past, Plural, Second}:      "were",
	{"be", Past, Plural, Third}:       "were",

	{"have", Present, Singular, First}:  "have",
	{"have", Present, Singular, Second}: "have",
	{"have", Present, Singular, Third}:  "has",
	{"have", Present, Plural, First}:    "have",
	{"have", Present, Plural, Second}:   "have",
	{"have", Present, Plural, Third}:    "have",
	{"have", Past, Singular, First}:     "had",
	{"have", Past, Singular, Second}:    "had",
	{"have", Past, Singular, Third}:     "had",
	{"have", Past, Plural, First}:       "had",
	{"have", Past, Plural, Second}:      "had",
	{"have", Past, Plural, Third}:       "had",

	{"do", Present, Singular, First}:  "do",
	{"do", Present, Singular, Second}: "do",
	{"do", Present, Singular, Third}:  "does",
	{"do", Present, Plural, First}:    "do",
	{"do", Present, Plural, Second}:   "do",
	{"do", Present, Plural, Third}:    "do",
	{"do", Past, Singular, First}:     "did",
	{"do", Past, Singular, Second}:    "did",
	{"do", Past, Singular, Third}:     "did",
	{"do", Past, Plural, First}:       "did",
	{"do", Past, Plural, Second}:      "did",
	{"do", Past, Plural, Third}:       "did",

	{"say", Present, Singular, First}:  "say",
	{"say", Present, Singular, Second}: "say",
	{"say", Present, Singular, Third}:  "says",
	{"say", Present, Plural, First}:    "say",
	{"say", Present, Plural, Second}:   "say",
	{"say", Present, Plural, Third}:    "say",
	{"say", Past, Singular, First}:     "said",
	{"say", Past, Singular, Second}:    "said",
	{"say", Past, Singular, Third}:     "said",
	{"say", Past, Plural, First}:       "said",
	{"say", Past, Plural, Second}:      "said",
	{"say", Past, Plural, Third}:       "said",
}

// principal parts of common irregular verbs: past, past participle,
// present participle (when not regular) and third person singular (when not
// regular).
type parts struct {
	Past       string
	Participle string
	Gerund     string
	Third      string
}

var irregularVerbs = map[string]parts{
	"be":         {"was", "been", "being", "is"},
	"have":       {"had", "had", "having", "has"},
	"do":         {"did", "done", "doing", "does"},
	"say":        {"said", "said", "", ""},
	"go":         {"went", "gone", "", "goes"},
	"make":       {"made", "made", "", ""},
	"take":       {"took", "taken", "", ""},
	"come":       {"came", "come", "", ""},
	"see":        {"saw", "seen", "seeing", ""},
	"know":       {"knew", "known", "", ""},
	"get":        {"got", "gotten", "getting", ""},
	"give":       {"gave", "given", "", ""},
	"find":       {"found", "found", "", ""},
	"think":      {"thought", "thought", "", ""},
	"tell":       {"told", "told", "", ""},
	"become":     {"became", "become", "", ""},
	"show":       {"showed", "shown", "", ""},
	"leave":      {"left", "left", "", ""},
	"feel":       {"felt", "felt", "", ""},
	"put":        {"put", "put", "putting", ""},
	"bring":      {"brought", "brought", "", ""},
	"begin":      {"began", "begun", "beginning", ""},
	"keep":       {"kept", "kept", "", ""},
	"hold":       {"held", "held", "", ""},
	"write":      {"wrote", "written", "", ""},
	"stand":      {"stood", "stood", "", ""},
	"hear":       {"heard", "heard", "", ""},
	"let":        {"let", "let", "letting", ""},
	"mean":       {"meant", "meant", "", ""},
	"set":        {"set", "set", "setting", ""},
	"meet":       {"met", "met", "", ""},
	"run":        {"ran", "run", "running", ""},
	"pay":        {"paid", "paid", "", ""},
	"sit":        {"sat", "sat", "sitting", ""},
	"speak":      {"spoke", "spoken", "", ""},
	"lie":        {"lay", "lain", "lying", ""},
	"lead":       {"led", "led", "", ""},
	"read":       {"read", "read", "", ""},
	"grow":       {"grew", "grown", "", ""},
	"lose":       {"lost", "lost", "", ""},
	"fall":       {"fell", "fallen", "", ""},
	"send":       {"sent", "sent", "", ""},
	"build":      {"built", "built", "", ""},
	"understand": {"understood", "understood", "", ""},
	"draw":       {"drew", "drawn", "", ""},
	"break":      {"broke", "broken", "", ""},
	"spend":      {"spent", "spent", "", ""},
	"cut":        {"cut", "cut", "cutting", ""},
	"rise":       {"rose", "risen", "", ""},
	"drive":      {"drove", "driven", "", ""},
	"buy":        {"bought", "bought", "", ""},
	"wear":       {"wore", "worn", "", ""},
	"choose":     {"chose", "chosen", "", ""},
	"win":        {"won", "won", "winning", ""},
	"fight":      {"fought", "fought", "", ""},
	"throw":      {"threw", "thrown", "", ""},
	"catch":      {"caught", "caught", "", ""},
	"sell":       {"sold", "sold", "", ""},
	"teach":      {"taught", "taught", "", ""},
	"fly":        {"flew", "flown", "", ""},
	"hit":        {"hit", "hit", "hitting", ""},
	"hurt":       {"hurt", "hurt", "", ""},
	"shut":       {"shut", "shut", "shutting", ""},
	"beat":       {"beat", "beaten", "", ""},
	"seek":       {"sought", "sought", "", ""},
	"strike":     {"struck", "struck", "", ""},
	"eat":        {"ate", "eaten", "", ""},
	"drink":      {"drank", "drunk", "", ""},
	"sing":       {"sang", "sung", "", ""},
	"swim":       {"swam", "swum", "swimming", ""},
	"forget":     {"forgot", "forgotten", "forgetting", ""},
	"steal":      {"stole", "stolen", "", ""},
	"shoot":      {"shot", "shot", "", ""},
	"sleep":      {"slept", "slept", "", ""},
	"hang":       {"hung", "hung", "", ""},
	"bear":       {"bore", "borne", "", ""},
	"bet":        {"bet", "bet", "betting", ""},
	"bid":        {"bid", "bid", "bidding", ""},
	"bind":       {"bound", "bound", "", ""},
	"bite":       {"bit", "bitten", "", ""},
	"blow":       {"blew", "blown", "", ""},
	"cost":       {"cost", "cost", "", ""},
	"deal":       {"dealt", "dealt", "", ""},
	"dig":        {"dug", "dug", "digging", ""},
	"feed":       {"fed", "fed", "", ""},
	"flee":       {"fled", "fled", "", ""},
	"forbid":     {"forbade", "forbidden", "forbidding", ""},
	"freeze":     {"froze", "frozen", "", ""},
	"hide":       {"hid", "hidden", "", ""},
	"lay":        {"laid", "laid", "", ""},
	"lend":       {"lent", "lent", "", ""},
	"light":      {"lit", "lit", "", ""},
	"quit":       {"quit", "quit", "quitting", ""},
	"ride":       {"rode", "ridden", "", ""},
	"ring":       {"rang", "rung", "", ""},
	"shake":      {"shook", "shaken", "", ""},
	"shine":      {"shone", "shone", "", ""},
	"sink":       {"sank", "sunk", "", ""},
	"slide":      {"slid", "slid", "", ""},
	"spread":     {"spread", "spread", "", ""},
	"spring":     {"sprang", "sprung", "", ""},
	"stick":      {"stuck", "stuck", "", ""},
	"sting":      {"stung", "stung", "", ""},
	"swear":      {"swore", "sworn", "", ""},
	"sweep":      {"swept", "swept", "", ""},
	"swing":      {"swung", "swung", "", ""},
	"tear":       {"tore", "torn", "", ""},
	"wake":       {"woke", "woken", "", ""},
	"weep":       {"wept", "wept", "", ""},
	"withdraw":   {"withdrew", "withdrawn", "", ""},
	"undergo":    {"underwent", "undergone", "", "undergoes"},
	"overcome":   {"overcame", "overcome", "", ""},
	"upset":      {"upset", "upset", "upsetting", ""},
}
