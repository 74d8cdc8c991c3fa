package completion

var defaultEntries = map[string]string{
	"add": "address", "adm": "administration", "agr": "agree", "ans": "answer",
	"app": "application", "arg": "argue", "assi": "assignment", "aut": "automatic",
	"beg": "beginning", "bel": "believe", "ben": "benefit", "bet": "between",
	"bro": "brother", "bu": "business", "cal": "calendar", "cap": "capacity",
	"cha": "character", "cho": "choice", "cla": "class", "cli": "client",
	"com": "communication", "con": "contract", "cor": "correction", "cou": "country",
	"cre": "credit", "dec": "decision", "del": "delivery", "dep": "department",
	"dev": "development", "dir": "direction", "dis": "discussion", "doc": "document",
	"dra": "draft", "edu": "education", "eff": "effect", "emp": "employee",
	"enc": "encourage", "equ": "equipment", "est": "establish", "eve": "event",
	"exp": "experience", "fin": "financial", "fol": "following", "for": "formation",
	"fun": "function", "gen": "general", "gro": "group", "gui": "guidance",
	"hea": "health", "his": "history", "ide": "idea", "imp": "important",
	"ind": "individual", "inf": "information", "int": "interest", "inv": "investment",
	"jud": "judgment", "jus": "justice", "lan": "language", "leg": "legal",
	"lev": "level", "lib": "library", "loc": "location", "man": "management",
	"mat": "material", "mea": "measure", "mem": "member", "met": "method",
	"mil": "military", "nat": "national", "nee": "necessary", "net": "network",
	"not": "notice", "obj": "object", "off": "office", "ope": "operation",
	"org": "organization", "par": "parent", "pat": "pattern", "per": "performance",
	"pla": "platform", "pol": "policy", "pos": "position", "pre": "presentation",
	"pro": "program", "pub": "public", "qui": "quickly", "rea": "reason",
	"rec": "recommend", "rel": "relationship", "rep": "report", "res": "response",
	"rev": "review", "sec": "section", "ser": "service", "sig": "significant",
	"sim": "similar", "soc": "social", "sta": "standard", "str": "structure",
	"sys": "system", "the": "theory", "typ": "typical", "uni": "university",
	"val": "value", "vie": "view", "wor": "worker",
}
