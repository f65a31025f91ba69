package analyzer

// lexicon holds the French harassment indicators, lower-case, in scan order.
// Matching is plain substring containment: short entries such as "con" also
// match inside unrelated words ("continuer").
var lexicon = []string{
	// insults
	"idiot",
	"imbécile",
	"débile",
	"crétin",
	"abruti",
	"nul",
	"con",
	"connard",
	"connasse",
	"salope",
	"pute",
	"enculé",
	"bâtard",
	"minable",
	"pauvre type",
	"cassos",
	"boloss",
	"moche",
	"gros porc",
	"grosse vache",

	// threats
	"je vais te tuer",
	"je vais te frapper",
	"tu vas le regretter",
	"je sais où tu habites",
	"t'es mort",
	"fais gaffe",
	"menace",

	// violence
	"tuer",
	"frapper",
	"cogner",
	"défoncer",

	// self-harm
	"suicide",
	"tue-toi",
	"va mourir",
	"crève",

	// exclusion and humiliation
	"personne ne t'aime",
	"tout le monde te déteste",
	"ta gueule",
	"ferme-la",
	"dégage",
	"sale",
	"honte à toi",
}

// Lexicon returns a copy of the terms the scanner looks for.
func Lexicon() []string {
	out := make([]string, len(lexicon))
	copy(out, lexicon)
	return out
}
